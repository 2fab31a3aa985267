package mongo

import "go.mongodb.org/mongo-driver/bson/primitive"

// ownerID converts a user id into the stored reference. Empty or malformed ids
// are stored as absent.
func ownerID(id string) *primitive.ObjectID {
	if id == "" {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return &oid
}

func ownerHex(oid *primitive.ObjectID) string {
	if oid == nil {
		return ""
	}
	return oid.Hex()
}
