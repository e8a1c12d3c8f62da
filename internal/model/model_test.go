package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveDate(t *testing.T) {
	don := &DonationRecord{Date: "2026-01-05"}
	bank := &BankRecord{Date: "2026-01-07"}

	assert.Equal(t, "2026-01-07", ReconciledTransaction{Donation: don, Bank: bank}.EffectiveDate())
	assert.Equal(t, "2026-01-05", ReconciledTransaction{Donation: don}.EffectiveDate())
	assert.Equal(t, "2026-01-07", ReconciledTransaction{Bank: bank}.EffectiveDate())
	assert.Equal(t, "", ReconciledTransaction{}.EffectiveDate())
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{
		NewDonationID(0): true,
	}
	for _, id := range []string{NewDonationID(0), NewSplitID(0, 0), NewBankID(0)} {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestArabicLabelsCoverCategories(t *testing.T) {
	for _, c := range []Category{
		CategoryZakat, CategoryInsulinPumps, CategoryGeneral, CategoryDebtors,
		CategoryHealth, CategoryProductiveFamilies, CategorySocial,
		CategoryFurniture, CategoryEducation, CategoryHumanitarian,
		CategoryOrphans, CategorySplit,
	} {
		assert.NotEmpty(t, ArabicLabels[c], "missing label for %s", c)
	}
}
