package models

// PortalAppTile is one tile on the portal landing page.
type PortalAppTile struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	IconURL     string `json:"iconUrl"`
	LinkURL     string `json:"linkUrl"`
	Description string `json:"description"`
}

type PortalAppPatch struct {
	Title       *string `json:"title"`
	IconURL     *string `json:"iconUrl"`
	LinkURL     *string `json:"linkUrl"`
	Description *string `json:"description"`
}

func (p PortalAppPatch) Apply(app *PortalAppTile) {
	if p.Title != nil {
		app.Title = *p.Title
	}
	if p.IconURL != nil {
		app.IconURL = *p.IconURL
	}
	if p.LinkURL != nil {
		app.LinkURL = *p.LinkURL
	}
	if p.Description != nil {
		app.Description = *p.Description
	}
}

// DefaultPortalApps is written out the first time the tile file is read.
func DefaultPortalApps() []PortalAppTile {
	return []PortalAppTile{
		{ID: 1, Title: "Dashboard", IconURL: "https://ui-avatars.com/api/?name=DB&background=0D8ABC&color=fff&size=128", LinkURL: "/dashboard", Description: "Main system dashboard"},
		{ID: 2, Title: "User Management", IconURL: "https://ui-avatars.com/api/?name=UM&background=ff5252&color=fff&size=128", LinkURL: "/users", Description: "Manage system users"},
		{ID: 3, Title: "Reports", IconURL: "https://ui-avatars.com/api/?name=RP&background=4caf50&color=fff&size=128", LinkURL: "/reports", Description: "View analytics and reports"},
		{ID: 4, Title: "Settings", IconURL: "https://ui-avatars.com/api/?name=ST&background=607d8b&color=fff&size=128", LinkURL: "/settings", Description: "System configuration"},
		{ID: 5, Title: "Help Center", IconURL: "https://ui-avatars.com/api/?name=HC&background=ff9800&color=fff&size=128", LinkURL: "/help", Description: "Documentation and support"},
	}
}
