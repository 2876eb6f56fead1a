package validators

import "go.mongodb.org/mongo-driver/bson"

var OfficeValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "status", "city", "street", "house_number", "registry_phone_number", "version"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":           bson.M{"bsonType": "string", "pattern": `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`},
			"photo_id":      bson.M{"bsonType": "string"},
			"status":        bson.M{"enum": []string{"Active", "Inactive"}},
			"city":          bson.M{"bsonType": "string", "minLength": 1},
			"street":        bson.M{"bsonType": "string", "minLength": 1},
			"house_number":  bson.M{"bsonType": "string", "minLength": 1},
			"office_number": bson.M{"bsonType": "string"},
			"registry_phone_number": bson.M{
				"bsonType": "string",
				"pattern":  `^\+\d{12}$`,
			},
			"location": bson.M{
				"bsonType": "array",
				"minItems": 2,
				"maxItems": 2,
				"items":    bson.M{"bsonType": "double"},
			},
			"version": bson.M{"bsonType": "long", "minimum": 1},
		},
	},
}
