package webpath

const (
	Admin               = "/admin"
	AdminLogin          = Admin + "/login"
	AdminLogout         = Admin + "/logout"
	AdminProfile        = Admin + "/profile"
	AdminRefreshToken   = Admin + "/refresh-token"
	AdminChangePassword = Admin + "/change-password"
	AdminDashboard      = Admin + "/dashboard"
	AdminEvents         = Admin + "/events"
	AdminEvent          = AdminEvents + "/:id"
	AdminMessages       = Admin + "/messages"
	AdminMessageRead    = AdminMessages + "/:id/read"
	AdminInfo           = Admin + "/info"

	Api        = "/api"
	ApiEvents  = Api + "/events"
	ApiEvent   = ApiEvents + "/:id"
	ApiInfo    = Api + "/info"
	ApiContact = Api + "/contact"
)
