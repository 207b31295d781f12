package domain

import (
	interfaces "credstore/internal/domain/interfaces"
	types "credstore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Category     = types.Category
	Updates      = types.Updates
	KeyPair      = types.KeyPair
	SignedPreKey = types.SignedPreKey
	Credentials  = types.Credentials
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RecordStore           = interfaces.RecordStore
	KeyStore              = interfaces.KeyStore
	CredentialInitializer = interfaces.CredentialInitializer
	RecordDecoder         = interfaces.RecordDecoder
)
