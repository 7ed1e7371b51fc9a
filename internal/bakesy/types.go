package bakesy

// Image is a full/thumbnail URL pair attached to an offering.
type Image struct {
	FullURL      string `json:"fullUrl"`
	ID           string `json:"id"`
	Key          string `json:"key"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Offering is a sellable item inside a category.
type Offering struct {
	Description *string `json:"description"`
	Hidden      bool    `json:"hidden"`
	ID          string  `json:"id"`
	Image       *string `json:"image"`
	Images      []Image `json:"images"`
	Name        string  `json:"name"`
	Position    int     `json:"position"`
	PriceCents  int     `json:"priceCents"`
	PriceType   string  `json:"priceType"` // "fixed" or a per-unit tag
	Slug        string  `json:"slug"`
}

// Category groups offerings and carries display metadata.
type Category struct {
	Default         bool       `json:"default"`
	DueDateDisabled bool       `json:"dueDateDisabled"`
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Offerings       []Offering `json:"offerings"`
	OfferingsCount  int        `json:"offeringsCount"`
	PageHeader      *string    `json:"pageHeader"`
	Slug            string     `json:"slug"`
	UpdatedAt       string     `json:"updatedAt"`
}

// Flavor is a named cake/cookie flavor or icing option.
type Flavor struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BakedGood is an entry on the flat baked-good menu (as opposed to the
// category-grouped offerings).
type BakedGood struct {
	AllowHalfDozen bool    `json:"allowHalfDozen"`
	DefaultUnit    *string `json:"defaultUnit"`
	DozenOnly      bool    `json:"dozenOnly"`
	ID             string  `json:"id"`
	MinQuantity    *int    `json:"minQuantity"`
	Name           string  `json:"name"`
	OfferingType   string  `json:"offeringType"`
	PriceCents     int     `json:"priceCents"`
	PriceType      string  `json:"priceType"`
	Slug           string  `json:"slug"`
	Stock          *int    `json:"stock"`
}

// Currency identifies the shop's currency.
type Currency struct {
	FlagURL string `json:"flagUrl"`
	ID      string `json:"id"`
}

// Bakery is the full catalog payload for one merchant.
type Bakery struct {
	CakeFlavors       []Flavor    `json:"cakeFlavors"`
	Categories        []Category  `json:"categories"`
	CookieFlavors     []Flavor    `json:"cookieFlavors"`
	Currency          Currency    `json:"currency"`
	Icings            []Flavor    `json:"icings"`
	SelectedBakedGoods []BakedGood `json:"selectedBakedGoods"`
}
