package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoDbConfigModel struct {
	ConnectionUrl string
	DatabaseName  string
}

type MongoDBClient struct {
	Client *mongo.Client
	Config MongoDbConfigModel
}

// InitializeDatabaseConnection connects and pings the primary before returning.
func InitializeDatabaseConnection(config MongoDbConfigModel) (*MongoDBClient, error) {
	clientOptions := options.Client().ApplyURI(config.ConnectionUrl)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connection error: %w", err)
	}

	// Ping the database to verify connection
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}

	return &MongoDBClient{
		Client: mongoClient,
		Config: config,
	}, nil
}

// NewMongoDBClient wraps an already connected client.
func NewMongoDBClient(client *mongo.Client, databaseName string) *MongoDBClient {
	return &MongoDBClient{
		Client: client,
		Config: MongoDbConfigModel{DatabaseName: databaseName},
	}
}

func (client *MongoDBClient) Database() *mongo.Database {
	return client.Client.Database(client.Config.DatabaseName)
}

func (client *MongoDBClient) GetCollectionByName(collectionName string) *mongo.Collection {
	return client.Database().Collection(collectionName)
}

func (client *MongoDBClient) Disconnect(ctx context.Context) error {
	return client.Client.Disconnect(ctx)
}
