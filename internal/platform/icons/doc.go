// Package icons defines the closed set of icons the site can render.
//
// Content refers to icons by stable identifiers; templates resolve each
// identifier to a Lucide symbol in the inline sprite shipped with every page.
package icons
