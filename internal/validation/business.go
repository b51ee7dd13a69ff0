package validation

import (
	"strings"

	"facilita/internal/models"
)

// NormalizeNIF strips everything but digits from a tax identifier.
func NormalizeNIF(nif string) string {
	var b strings.Builder
	for _, r := range nif {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidNIF reports whether the Angolan tax identifier has exactly ten digits.
func ValidNIF(nif string) bool {
	return len(NormalizeNIF(nif)) == NIFLength
}

// NIF validates an Angolan company tax identifier.
func (v *Validator) NIF(field, nif string) {
	v.Check(ValidNIF(nif), field, "must contain exactly 10 digits")
}

// Location validates a province and, when given, that the municipality
// belongs to it.
func (v *Validator) Location(provinceField, province, municipalityField, municipality string) {
	if province == "" {
		return
	}
	munis, ok := AngolaMunicipalities[province]
	if !ok {
		v.AddError(provinceField, "must be a valid Angolan province")
		return
	}
	if municipality == "" {
		return
	}
	for _, m := range munis {
		if m == municipality {
			return
		}
	}
	v.AddError(municipalityField, "must be a municipality of the selected province")
}

// Product validates a product or service listing.
func (v *Validator) Product(p *models.Product) {
	v.Required("title", p.Title)
	v.MaxLength("title", p.Title, MaxTitleLength)
	v.MaxLength("description", p.Description, MaxDescriptionLength)
	v.Range("price", p.Price, MinTransactionAmount, MaxTransactionAmount)
	v.Check(p.Category == models.ProductCategoryProduct || p.Category == models.ProductCategoryService,
		"category", "must be either Product or Service")
	v.Check(len(p.Gallery) <= MaxGallerySize, "gallery", "too many gallery images")
}

// Withdrawal validates a withdrawal request amount against the wallet.
func (v *Validator) Withdrawal(amount, walletBalance float64) {
	v.Range("amount", amount, MinTransactionAmount, MaxTransactionAmount)
	v.Check(amount <= walletBalance, "amount", "exceeds available wallet balance")
}
