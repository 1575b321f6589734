// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RightsLevel is the scope of the license granted by a [Token].
type RightsLevel string

const (
	// RightsBasic allows personal playback only.
	RightsBasic RightsLevel = "basic"

	// RightsCommercial additionally allows commercial exhibition.
	RightsCommercial RightsLevel = "commercial"

	// RightsDistribution additionally allows redistribution of the title.
	RightsDistribution RightsLevel = "distribution"
)

// Valid reports whether r is one of the known rights levels.
func (r RightsLevel) Valid() bool {
	switch r {
	case RightsBasic, RightsCommercial, RightsDistribution:
		return true
	}
	return false
}

// Token is the client-side view of an on-chain license grant.
//
// ID is unique within a wallet's token list; several tokens may share the
// same ContentID when more than one license was granted for a title.
type Token struct {
	// ID is the token identifier assigned by the contract.
	ID string `json:"id"`

	// ContentID links the token to a catalog title.
	ContentID string `json:"contentId"`

	// Contract is the address of the license contract that minted the token.
	Contract string `json:"contract"`

	// RightsLevel is the scope of the license.
	RightsLevel RightsLevel `json:"rightsLevel"`

	// PublicScreening allows showing the title to an audience.
	PublicScreening bool `json:"publicScreening,omitempty"`

	// Streaming allows streaming the title to other devices.
	Streaming bool `json:"streaming,omitempty"`

	// Remix allows derivative works.
	Remix bool `json:"remix,omitempty"`
}
