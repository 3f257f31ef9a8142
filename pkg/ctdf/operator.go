package ctdf

type Operator struct {
	Reference   string `json:"reference" groups:"basic"`
	Name        string `json:"name" groups:"basic"`
	Description string `json:"description" groups:"basic"`

	DataSource *DataSource `json:"dataSource,omitempty" groups:"internal"`
}
