package domain

// Tables lists every model auto-migrated at startup.
func Tables() []any {
	return []any{
		&User{},
		&Store{},
		&Category{},
		&Product{},
		&Order{},
		&OrderItem{},
		&CartItem{},
	}
}
