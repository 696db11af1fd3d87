package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBConn struct {
	Client *mongo.Client
	opts   *options.ClientOptions
	dbName string
}

func (db *MongoDBConn) Connect() error {

	client, err := mongo.Connect(context.TODO(), db.opts)
	if err != nil {
		return err
	}

	db.Client = client

	return nil
}

// Ping checks the server answers, since Connect alone does not dial.
func (db *MongoDBConn) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, nil)
}

func (db *MongoDBConn) Disconnect() error {
	return db.Client.Disconnect(context.TODO())
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {
	return db.Client.Database(db.dbName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {
	return db.GetDatabase().Collection(collectionName)
}

func New(uri string, dbName string) MongoDBConn {

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	return MongoDBConn{
		opts:   opts,
		dbName: dbName,
	}
}

func InitConnection(uri string, dbName string) (*MongoDBConn, error) {

	mongodbConn := New(uri, dbName)
	if err := mongodbConn.Connect(); err != nil {
		return nil, err
	}

	return &mongodbConn, nil
}
