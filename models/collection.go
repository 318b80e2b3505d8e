// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names a logical replica persisted as one unit.
type Collection struct {
	// Name is the storage key of the collection.
	Name string

	// Protocol is the QR relay discriminator. Empty for collections that
	// only travel through the hub.
	Protocol string
}

var (
	Shelters = Collection{Name: "shelters", Protocol: ProtocolShelters}
	Rescue   = Collection{Name: "rescue", Protocol: ProtocolRescue}
	Messages = Collection{Name: "messages"}
	Family   = Collection{Name: "family"}
	Patients = Collection{Name: "patients"}
	Supplies = Collection{Name: "supplies"}
)

// Collections lists every known collection in a fixed order.
var Collections = []Collection{Shelters, Rescue, Messages, Family, Patients, Supplies}

// LocalNamespace is the replica namespace used by a device for its own data.
// The hub namespaces replicas by room id instead.
const LocalNamespace = "local"

// Relayable reports whether the collection can be exported over QR codes.
func (c Collection) Relayable() bool {
	return c.Protocol != ""
}

// CollectionByName looks up a known collection.
func CollectionByName(name string) (Collection, bool) {
	for _, c := range Collections {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}
