package entity

// Stats son los agregados del panel de administración. Los calcula el
// backend; el cliente solo los presenta.
type Stats struct {
	TotalUsers           int `json:"total_users"`
	TotalSubscriptions   int `json:"total_subscriptions"`
	ActiveSubscriptions  int `json:"active_subscriptions"`
	PendingSubscriptions int `json:"pending_subscriptions"`
	TotalMessages        int `json:"total_messages"`
	UnreadMessages       int `json:"unread_messages"`
	TotalCompanies       int `json:"total_companies"`
}
