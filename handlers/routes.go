package handlers

import (
	"github.com/sitetools/ops-core/routing"
)

// RegisterRoutes wires every endpoint onto the router. All /api routes
// run behind the panic recovery wrapper; everything except login
// requires a session, and the admin group additionally checks the
// role claim.
func (h *Set) RegisterRoutes(router *routing.BaseRouter) {
	recoverWrap := routing.WrapperFunc(routing.RecoverWrapper)

	router.Group("/api/", func(api *routing.RouteGroup) {
		api.HandleFunc("POST login", h.Login)

		api.Group("", func(authed *routing.RouteGroup) {
			authed.HandleFunc("POST logout", h.Logout)
			authed.HandleFunc("GET me", h.Me)

			authed.HandleFunc("GET incidents", h.ListIncidents)
			authed.HandleFunc("POST incidents", h.CreateIncident)
			authed.HandleFunc("GET incidents/{id}", h.GetIncident)
			authed.HandleFunc("PUT incidents/{id}", h.UpdateIncident)
			authed.HandleFunc("DELETE incidents/{id}", h.DeleteIncident)
			authed.HandleFunc("GET incidents/{id}/document", h.RenderIncidentDocument)

			authed.HandleFunc("GET dse", h.ListDSEs)
			authed.HandleFunc("POST dse", h.CreateDSE)
			authed.HandleFunc("GET dse/{id}/document", h.RenderDSEDocument)

			authed.HandleFunc("GET orgs/{orgID}/talks", h.ListToolboxTalks)
			authed.HandleFunc("POST talks", h.CreateToolboxTalk)
			authed.HandleFunc("GET talks/{id}/document", h.RenderToolboxTalkDocument)

			authed.HandleFunc("POST checkins", h.CheckIn)
			authed.HandleFunc("POST checkins/checkout", h.CheckOut)

			authed.HandleFunc("GET attachments/{bucket}", h.ListAttachments)
			authed.HandleFunc("POST attachments/{bucket}", h.UploadAttachment)
			authed.HandleFunc("GET attachments/{bucket}/{object}/url", h.SignAttachmentURL)
			authed.HandleFunc("DELETE attachments/{bucket}/{object}", h.RemoveAttachment)

			authed.Group("admin/", func(admin *routing.RouteGroup) {
				admin.HandleFunc("GET orgs/{orgID}/checkins", h.OpenCheckins)
				admin.HandleFunc("GET orgs/{orgID}/projects", h.ListProjects)
				admin.HandleFunc("POST projects", h.CreateProject)
			}, h.RequireAdmin())
		}, h.RequireLogin())
	}, recoverWrap)
}
