package models

// Field names follow the remote catalog API contract: the server speaks
// Mongo-style `_id` and camelCase keys, so every struct here mirrors that
// wire shape exactly.

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DefaultProfile is rendered whenever no stored profile is available.
func DefaultProfile() Profile {
	return Profile{Name: "User", Email: "No email"}
}

type Category struct {
	ID           string `json:"_id"`
	CategoryName string `json:"categoryName"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	IsPublished  bool   `json:"isPublished"`
}

func (c Category) Key() string { return c.ID }

type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

const (
	StatusInStock      = "in stock"
	StatusOutOfStock   = "out of stock"
	StatusLimitedStock = "limited stock"
)

type Product struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Thumbnail   string         `json:"thumbnail"`
	Images      []ProductImage `json:"images"`
	Price       float64        `json:"price"`
	Discount    float64        `json:"discount"`
	Stock       int            `json:"stock"`
	Status      string         `json:"status"`
	Category    string         `json:"category"`
	IsPublished bool           `json:"isPublished"`
	Slug        string         `json:"slug"`
}

func (p Product) Key() string { return p.ID }

type Message struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (m Message) Key() string { return m.ID }
