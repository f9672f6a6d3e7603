package libreria

// Author describes a catalog author in transport-friendly form. The backend
// reports the active flag under the "status" key on every record.
type Author struct {
	ID          int64  `json:"author_id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Bio         string `json:"bio"`
	Active      bool   `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Category describes a book category.
type Category struct {
	ID          int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Topic describes a book-club discussion topic.
type Topic struct {
	ID          int64  `json:"topic_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Customer describes a store client record.
type Customer struct {
	ID        int64  `json:"client_id"`
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Active    bool   `json:"status"`
	CreatedAt string `json:"created_at"`
}

// User describes a dashboard operator account.
type User struct {
	ID        int64  `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Order describes a purchase order and its line items.
type Order struct {
	ID         int64       `json:"order_id"`
	CustomerID int64       `json:"client_id"`
	Customer   string      `json:"client_name"`
	Total      float64     `json:"total"`
	Status     string      `json:"order_status"`
	CreatedAt  string      `json:"created_at"`
	Items      []OrderItem `json:"items"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Membership describes a subscription plan, its benefits, and the
// subscriptions currently attached to it. Benefits and subscriptions may be
// absent on the wire; callers must treat nil as empty.
type Membership struct {
	ID            int64          `json:"membership_id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	Active        bool           `json:"status"`
	Benefits      []Benefit      `json:"benefits"`
	Subscriptions []Subscription `json:"subscriptions"`
}

// Benefit is a perk attached to a membership plan.
type Benefit struct {
	ID          int64  `json:"benefit_id"`
	Description string `json:"description"`
}

// Subscription links a client to a membership plan.
type Subscription struct {
	ID         int64  `json:"subscription_id"`
	CustomerID int64  `json:"client_id"`
	Active     bool   `json:"status"`
	StartDate  string `json:"start_date"`
}

// PageInfo carries the server-reported totals for a paginated listing.
type PageInfo struct {
	TotalPages int
	TotalCount int
}
