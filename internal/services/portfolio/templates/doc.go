// Package templates renders the portfolio pages as templ components.
package templates
