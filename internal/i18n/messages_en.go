package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "site.name", "Storefront")
	message.SetString(lang, "title.page", "%s | Storefront")

	// Navigation
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.gallery", "Gallery")
	message.SetString(lang, "nav.privacy", "Privacy")
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.login", "Log in")
	message.SetString(lang, "nav.register", "Register")
	message.SetString(lang, "nav.logout", "Log out")
	message.SetString(lang, "nav.scroll_top", "Back to top")

	// Home sections
	message.SetString(lang, "hero.heading", "New season, new style")
	message.SetString(lang, "hero.subheading", "Discover the latest arrivals across every category.")
	message.SetString(lang, "hero.cta", "Shop now")
	message.SetString(lang, "categories.heading", "Shop by category")
	message.SetString(lang, "categories.products", "%d products")
	message.SetString(lang, "categories.empty", "Loading categories...")
	message.SetString(lang, "fashion.heading", "Fashion")
	message.SetString(lang, "fashion.empty", "No products to show yet")
	message.SetString(lang, "testimonials.heading", "What our customers say")
	message.SetString(lang, "testimonials.empty", "No testimonials available")
	message.SetString(lang, "testimonials.reload", "Refresh")
	message.SetString(lang, "testimonials.rating", "%d out of 5")
	message.SetString(lang, "gallery.heading", "Gallery")
	message.SetString(lang, "gallery.view_all", "View all")
	message.SetString(lang, "gallery.empty", "No images yet")
	message.SetString(lang, "cta.heading", "Join our newsletter")
	message.SetString(lang, "cta.body", "Be the first to hear about drops and offers.")
	message.SetString(lang, "cta.button", "Create an account")
	message.SetString(lang, "carousel.previous", "Previous")
	message.SetString(lang, "carousel.next", "Next")
	message.SetString(lang, "carousel.close", "Close")
	message.SetString(lang, "carousel.position", "%d of %d")

	// Auth modals
	message.SetString(lang, "login.heading", "Log in")
	message.SetString(lang, "login.username", "Username")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Log in")
	message.SetString(lang, "login.failed", "Invalid username or password")
	message.SetString(lang, "login.switch", "No account yet? Register")
	message.SetString(lang, "register.heading", "Create an account")
	message.SetString(lang, "register.name", "Name")
	message.SetString(lang, "register.email", "Email")
	message.SetString(lang, "register.password", "Password")
	message.SetString(lang, "register.password_confirmation", "Confirm password")
	message.SetString(lang, "register.submit", "Register")
	message.SetString(lang, "register.failed", "Registration failed, please check your details")
	message.SetString(lang, "register.done", "Account created, you can now log in")
	message.SetString(lang, "register.switch", "Already registered? Log in")

	// Privacy
	message.SetString(lang, "privacy.heading", "Privacy policy")
	message.SetString(lang, "privacy.collect.heading", "What we collect")
	message.SetString(lang, "privacy.collect.body", "We collect the details you give us when you create an account or place an order, such as your name, email address and delivery address.")
	message.SetString(lang, "privacy.use.heading", "How we use it")
	message.SetString(lang, "privacy.use.body", "Your details are used to process orders, provide support and, if you agree, send you news about our products.")
	message.SetString(lang, "privacy.rights.heading", "Your rights")
	message.SetString(lang, "privacy.rights.body", "You can ask us at any time to see, correct or delete the personal data we hold about you.")

	// Admin
	message.SetString(lang, "dashboard.heading", "Dashboard")
	message.SetString(lang, "dashboard.chart", "Sales")
	message.SetString(lang, "dashboard.users", "Users")
	message.SetString(lang, "dashboard.users_unavailable", "Users are unavailable right now")
	message.SetString(lang, "dashboard.no_users", "No users yet")
	message.SetString(lang, "dashboard.no_sales", "No sales data")
	message.SetString(lang, "table.name", "Name")
	message.SetString(lang, "table.email", "Email")
	message.SetString(lang, "table.role", "Role")
	message.SetString(lang, "table.actions", "Actions")
	message.SetString(lang, "table.edit", "Edit")
	message.SetString(lang, "user_form.heading", "Edit user")
	message.SetString(lang, "user_form.name", "Name")
	message.SetString(lang, "user_form.email", "Email")
	message.SetString(lang, "user_form.role", "Role")
	message.SetString(lang, "user_form.select_role", "Select a role")
	message.SetString(lang, "user_form.read_only", "Only a super admin can change roles")
	message.SetString(lang, "user_form.submit", "Save")
	message.SetString(lang, "user_form.saved", "Role updated")
	message.SetString(lang, "user_form.role_required", "Role is required")
	message.SetString(lang, "user_form.invalid_role", "Role is not valid")
	message.SetString(lang, "user_form.forbidden", "You are not allowed to change roles")
	message.SetString(lang, "user_form.failed", "Could not update the role, please try again")
	message.SetString(lang, "role.super admin", "Super admin")
	message.SetString(lang, "role.admin", "Admin")
	message.SetString(lang, "role.customer", "Customer")

	// Errors
	message.SetString(lang, "error.not_found", "Page not found")
	message.SetString(lang, "error.internal", "Something went wrong")
}
