package navigation

import "time"

// Screen is one page of the wireframe.
type Screen struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// InNav marks screens reachable from the sidebar.
	InNav bool `json:"in_nav"`
}

// DefaultScreen is shown when a browser has no navigation state.
const DefaultScreen = "dashboard"

// AccountDetailScreen shows the account selected from a list or the pipeline.
const AccountDetailScreen = "account-detail"

// maxHistory bounds the back stack per browser.
const maxHistory = 50

// Screens lists every screen in sidebar order.
var Screens = []Screen{
	{ID: "dashboard", Title: "Dashboard", InNav: true},
	{ID: "accounts", Title: "Accounts", InNav: true},
	{ID: AccountDetailScreen, Title: "Account Detail"},
	{ID: "pipeline", Title: "Pipeline", InNav: true},
	{ID: "leads", Title: "Leads", InNav: true},
	{ID: "reporting", Title: "Reporting", InNav: true},
	{ID: "admin", Title: "Admin", InNav: true},
	{ID: "settings", Title: "Settings", InNav: true},
}

// RequiredScreens must always be registered.
var RequiredScreens = []string{"dashboard", "accounts", "leads", "pipeline", "reporting", "admin", "settings"}

// Session is a browser's navigation state.
type Session struct {
	BrowserID string    `json:"browser_id"`
	Current   string    `json:"current"`
	History   []string  `json:"history"`
	AccountID string    `json:"account_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanGoBack reports whether Back would change the current screen.
func (s Session) CanGoBack() bool {
	return len(s.History) > 0
}

// Lookup returns the screen with the given ID.
func Lookup(id string) (Screen, bool) {
	for _, s := range Screens {
		if s.ID == id {
			return s, true
		}
	}
	return Screen{}, false
}
