package entity

// BloodType represents a canonical ABO/Rh blood group
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"

	// BloodTypeUnknown is the sentinel for a profile that has not filled
	// in a blood type yet
	BloodTypeUnknown BloodType = "unknown"
)

// AllBloodTypes lists the 8 canonical types (excludes the unknown sentinel)
var AllBloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

// compatibleDonors maps a recipient blood type to the donor types that may
// donate to it, per standard transfusion rules
var compatibleDonors = map[BloodType][]BloodType{
	BloodTypeAPositive:  {BloodTypeAPositive, BloodTypeANegative, BloodTypeOPositive, BloodTypeONegative},
	BloodTypeANegative:  {BloodTypeANegative, BloodTypeONegative},
	BloodTypeBPositive:  {BloodTypeBPositive, BloodTypeBNegative, BloodTypeOPositive, BloodTypeONegative},
	BloodTypeBNegative:  {BloodTypeBNegative, BloodTypeONegative},
	BloodTypeABPositive: {BloodTypeAPositive, BloodTypeANegative, BloodTypeBPositive, BloodTypeBNegative, BloodTypeABPositive, BloodTypeABNegative, BloodTypeOPositive, BloodTypeONegative},
	BloodTypeABNegative: {BloodTypeANegative, BloodTypeBNegative, BloodTypeABNegative, BloodTypeONegative},
	BloodTypeOPositive:  {BloodTypeOPositive, BloodTypeONegative},
	BloodTypeONegative:  {BloodTypeONegative},
}

// CompatibleDonors returns the donor blood types compatible with the given
// recipient type. Unrecognized input yields an empty set.
func CompatibleDonors(recipient BloodType) []BloodType {
	donors, ok := compatibleDonors[recipient]
	if !ok {
		return []BloodType{}
	}
	out := make([]BloodType, len(donors))
	copy(out, donors)
	return out
}

// IsValidBloodType reports whether t is one of the 8 canonical types
func IsValidBloodType(t BloodType) bool {
	_, ok := compatibleDonors[t]
	return ok
}
