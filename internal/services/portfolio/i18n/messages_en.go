package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "title.page", "%s | %s")
	message.SetString(lang, "meta.description", "%s, %s at %s. Projects in embedded systems, hardware and robotics.")
	message.SetString(lang, "nav.resume", "Resume")
	message.SetString(lang, "nav.toggle_menu", "Toggle menu")

	// Home
	message.SetString(lang, "title.home", "Home")
	message.SetString(lang, "hero.year_title", "%s %s")
	message.SetString(lang, "hero.headshot_alt", "%s headshot")
	message.SetString(lang, "hero.get_in_touch", "Get In Touch")
	message.SetString(lang, "hero.view_projects", "View Projects")
	message.SetString(lang, "hero.scroll_down", "Scroll down")
	message.SetString(lang, "skills.heading", "Technical Skills")
	message.SetString(lang, "skills.subtitle", "A comprehensive toolkit for building intelligent robotic systems and embedded solutions")
	message.SetString(lang, "experience.heading", "Experience & Leadership")
	message.SetString(lang, "experience.subtitle", "Leading technical teams and making impact through technology")
	message.SetString(lang, "contact.heading", "Let's Work Together")
	message.SetString(lang, "contact.email", "Email")
	message.SetString(lang, "contact.linkedin", "LinkedIn")
	message.SetString(lang, "contact.linkedin_cta", "Connect with me")
	message.SetString(lang, "contact.github", "GitHub")
	message.SetString(lang, "contact.github_cta", "View my code")
	message.SetString(lang, "contact.send_email", "Send an Email")
	message.SetString(lang, "contact.download_resume", "Download Resume")
	message.SetString(lang, "contact.location", "Based in %s • %s")

	// Projects
	message.SetString(lang, "title.projects", "Projects")
	message.SetString(lang, "projects.heading", "Selected Work")
	message.SetString(lang, "projects.subtitle", "Exploring robotics, embedded systems, and intelligent automation")
	message.SetString(lang, "projects.featured", "Featured Project")
	message.SetString(lang, "projects.more_tech", "+%d")
	message.SetString(lang, "projects.view", "View Project")
	message.SetString(lang, "projects.image_placeholder", "Project Image")
	message.SetString(lang, "projects.empty", "No projects added yet. Add your first project in the data file!")

	// Project detail
	message.SetString(lang, "project.back", "Back to Projects")
	message.SetString(lang, "project.back_all", "Back to All Projects")
	message.SetString(lang, "project.github", "View on GitHub")
	message.SetString(lang, "project.live", "View Live Demo")
	message.SetString(lang, "project.problem", "Problem")
	message.SetString(lang, "project.solution", "Solution")
	message.SetString(lang, "project.implementation", "Implementation")
	message.SetString(lang, "project.gallery", "Project Gallery")
	message.SetString(lang, "project.video_title", "Video %d")
	message.SetString(lang, "project.document_default", "Technical Documentation")
	message.SetString(lang, "project.document_download", "Download Full Documentation")
	message.SetString(lang, "project.tech", "Technologies & Tools")

	// About
	message.SetString(lang, "about.snapshots", "A Few Snapshots")
	message.SetString(lang, "about.hobbies", "What I Love Doing")
	message.SetString(lang, "about.fun_facts", "Fun Facts")
	message.SetString(lang, "about.cta_heading", "Let's Connect")
	message.SetString(lang, "about.cta_body", "Interested in collaborating on a project or just want to chat about technology and engineering? I'd love to hear from you!")
	message.SetString(lang, "about.cta_button", "Get in Touch")

	// Footer
	message.SetString(lang, "footer.blurb", "%s %s at %s, %s.")
	message.SetString(lang, "footer.connect", "Connect")
	message.SetString(lang, "footer.copyright", "© %s %s.")
	message.SetString(lang, "footer.location", "Based in %s")

	// Errors
	message.SetString(lang, "title.not_found", "Page Not Found")
	message.SetString(lang, "title.server_error", "Something Went Wrong")
	message.SetString(lang, "error.not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "error.server_error", "The page could not be rendered. Please try again.")
	message.SetString(lang, "error.home", "Back to Home")
}
