package output

// Placeholders for values that do not exist, such as sunrise during a
// polar night.
const (
	TableMissing  = "-"
	DetailMissing = "None"
)
