package cards_test

import (
	"testing"

	"github.com/crestbuild/ops_backend/internal/utils/cards"
	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownSuffix(t *testing.T) {
	assert.Equal(t, "David Berman", cards.Resolve(cards.DefaultDirectory, "POS PURCHASE CARD 2321"))
	assert.Equal(t, "Sharon Joch", cards.Resolve(cards.DefaultDirectory, "2734"))
}

func TestResolve_UnknownSuffix(t *testing.T) {
	assert.Equal(t, cards.UnknownCardholder, cards.Resolve(cards.DefaultDirectory, "POS PURCHASE CARD 9999"))
	assert.Equal(t, cards.UnknownCardholder, cards.Resolve(cards.DefaultDirectory, ""))
}

func TestResolve_ShortDescriptionIsZeroPadded(t *testing.T) {
	// "205" pads to "0205", which is in the directory.
	assert.Equal(t, "Jhonatan Salazar", cards.Resolve(cards.DefaultDirectory, "205"))
}

func TestResolve_CustomDirectory(t *testing.T) {
	directory := map[string]string{"0001": "Test Holder"}
	assert.Equal(t, "Test Holder", cards.Resolve(directory, "ANY DESC 0001"))
	assert.Equal(t, cards.UnknownCardholder, cards.Resolve(directory, "ANY DESC 2321"))
}
