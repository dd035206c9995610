package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePartyType(t *testing.T) {
	assert.Equal(t, PartySelfFactory, DerivePartyType("Self"))
	assert.Equal(t, PartyThirdParty, DerivePartyType("Jaipur Depot"))
	assert.Equal(t, PartyThirdParty, DerivePartyType(""))
	// Case matters: only the exact "Self" marker maps to the factory.
	assert.Equal(t, PartyThirdParty, DerivePartyType("self"))
}
