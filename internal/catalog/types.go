package catalog

// Court is a bookable unit priced per hour. The court list is a fixed
// property of the facility and ships with the portal.
type Court struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PricePerHour int64  `json:"price_per_hour"`
	Premium      bool   `json:"premium"`
}

// TrainingSession is a bookable unit with a fixed package price.
type TrainingSession struct {
	ID        string `json:"id"`
	CoachName string `json:"coach_name"`
	Schedule  string `json:"schedule"`
	CourtID   string `json:"court_id"`
	Price     int64  `json:"price"`
	Capacity  int    `json:"capacity"`
	Enrolled  int    `json:"enrolled"`
}

// CatalogItem is a quantity-adjustable add-on (equipment rental or
// food/drink). Stock is only enforced when StockTracked is set.
type CatalogItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	Stock        int    `json:"stock"`
	StockTracked bool   `json:"stock_tracked"`
}
