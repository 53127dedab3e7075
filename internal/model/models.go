package model

// All lists every table owned by the back office, parents first.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Job{},
		&Application{},
		&ContactMessage{},
	}
}
