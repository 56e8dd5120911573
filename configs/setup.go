package configs

import (
	"go.mongodb.org/mongo-driver/mongo"
)

const databaseName = "marketplaceApi"

func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(databaseName).Collection(collectionName)
}
