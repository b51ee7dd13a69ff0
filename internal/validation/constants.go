package validation

const (
	// Amount limits (kwanzas)
	MinTransactionAmount = 1.00
	MaxTransactionAmount = 100000000.00

	// Tax identifier
	NIFLength = 10

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
	MaxReferenceLength   = 100
	MaxMessageLength     = 4000

	// Product gallery
	MaxGallerySize = 10
)
