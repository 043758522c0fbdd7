package catalog

// The facility floor plan is static: six courts, two of them the
// premium tier with a higher base rate.
var courts = []Court{
	{ID: "court-1", Name: "Court 1", PricePerHour: 100000},
	{ID: "court-2", Name: "Court 2", PricePerHour: 100000},
	{ID: "court-3", Name: "Court 3", PricePerHour: 100000},
	{ID: "court-4", Name: "Court 4", PricePerHour: 100000},
	{ID: "court-5", Name: "Court 5 (Premium)", PricePerHour: 150000, Premium: true},
	{ID: "court-6", Name: "Court 6 (Premium)", PricePerHour: 150000, Premium: true},
}

func Courts() []Court {
	out := make([]Court, len(courts))
	copy(out, courts)
	return out
}

func CourtByID(id string) (Court, bool) {
	for _, c := range courts {
		if c.ID == id {
			return c, true
		}
	}
	return Court{}, false
}
