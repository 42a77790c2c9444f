package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// GetCreatedSortBson maps a sort query value onto a bson sort document.
// Everything sorts on created_at; only the direction is negotiable.
func GetCreatedSortBson(sort string) bson.D {
	value := -1
	if strings.Contains(sort, "asc") {
		value = 1
	}

	return bson.D{{Key: "created_at", Value: value}}
}
