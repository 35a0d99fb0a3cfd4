package domain

type Product struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

// CartLine is one persisted row: a user's chosen quantity of one product.
type CartLine struct {
	ID        int64 `db:"id" json:"id"`
	UserID    int64 `db:"user_id" json:"userId"`
	ProductID int64 `db:"product_id" json:"productId"`
	Qty       int   `db:"qty" json:"qty"`
}

// CartItem is a cart line joined to its product for display.
type CartItem struct {
	ID        int64   `db:"id" json:"id"`
	ProductID int64   `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Qty       int     `db:"qty" json:"qty"`
}

type Cart struct {
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}

// Receipt is ephemeral: computed at checkout, returned in the response,
// never persisted.
type Receipt struct {
	Ref       string  `json:"ref"`
	Total     float64 `json:"total"`
	Timestamp string  `json:"timestamp"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	UserID    int64   `json:"userId"`
}

type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
