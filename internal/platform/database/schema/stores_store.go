package schema

// StoresStoreTable represents the 'stores' table
type StoresStoreTable struct {
	Table     string
	ID        string
	OwnerID   string
	Name      string
	Email     string
	Address   string
	CreatedAt string
	UpdatedAt string
}

// StoresStore is the schema definition for stores
var StoresStore = StoresStoreTable{
	Table:     "stores",
	ID:        "id",
	OwnerID:   "owner_id",
	Name:      "name",
	Email:     "email",
	Address:   "address",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
