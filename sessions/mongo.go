package sessions

import (
	"context"
	"errors"
	"slices"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tokenIndex = "token_1"
const expiresAtIndex = "expires_at_1"

type MongoStore struct {
	Coll *mongo.Collection
}

func NewMongoStore(conn *mongodb.MongoDBConn) (*MongoStore, error) {

	var store = new(MongoStore)

	coll, err := store.createCollection(conn)
	if err != nil {
		return nil, err
	}

	err = store.createIndexes(coll)
	if err != nil {
		return nil, err
	}

	store.Coll = coll

	return store, nil
}

func (MongoStore) GetCollectionName() string {
	return "sessions"
}

func (m MongoStore) createCollection(conn *mongodb.MongoDBConn) (*mongo.Collection, error) {

	dashboardDB := conn.GetDatabase()
	collectionName := m.GetCollectionName()

	collectionNameList, err := dashboardDB.ListCollectionNames(context.Background(), bson.D{})
	if err != nil {
		return nil, err
	}

	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"token", "admin", "created_at", "expires_at"},
				"properties": bson.M{
					"token": bson.M{
						"bsonType":    "string",
						"description": "Token must not be empty",
					},
					"admin": bson.M{
						"bsonType":    "object",
						"description": "Admin must be the signed-in user object",
					},
					"created_at": bson.M{
						"bsonType":    "date",
						"description": "Created at must be a date",
					},
					"expires_at": bson.M{
						"bsonType":    "date",
						"description": "Expires at must be a date",
					},
				},
			},
		},
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		result := dashboardDB.RunCommand(context.Background(), cmd, options.RunCmd())
		if err := result.Err(); err != nil {
			return nil, err
		}

		return conn.GetCollection(collectionName), nil
	}

	collectionOptions := options.CreateCollection()
	collectionOptions.SetValidator(validator)
	collectionOptions.SetValidationLevel("strict")

	err = dashboardDB.CreateCollection(context.Background(), collectionName, collectionOptions)
	if err != nil {
		return nil, err
	}

	return conn.GetCollection(collectionName), nil
}

func (m MongoStore) createIndexes(coll *mongo.Collection) error {

	cur, err := coll.Indexes().List(context.Background())
	if err != nil {
		return err
	}

	var indexes []bson.M
	err = cur.All(context.Background(), &indexes)
	if err != nil {
		return err
	}

	contains := slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == tokenIndex
	})

	if !contains {

		indexModelOptions := options.Index().SetName(tokenIndex).SetUnique(true)
		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: "token", Value: 1},
			},
			Options: indexModelOptions,
		}

		_, err = coll.Indexes().CreateOne(context.Background(), indexModel)
		if err != nil {
			return err
		}
	}

	contains = slices.ContainsFunc(indexes, func(m primitive.M) bool {
		return m["name"] == expiresAtIndex
	})

	if !contains {

		// MongoDB removes documents once expires_at has passed.
		indexModelOptions := options.Index().SetName(expiresAtIndex).SetExpireAfterSeconds(0)
		indexModel := mongo.IndexModel{
			Keys: bson.D{
				{Key: "expires_at", Value: 1},
			},
			Options: indexModelOptions,
		}

		_, err = coll.Indexes().CreateOne(context.Background(), indexModel)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m MongoStore) Insert(ctx context.Context, session Session) error {

	_, err := m.Coll.InsertOne(ctx, session)
	if err != nil {
		return err
	}

	return nil
}

func (m MongoStore) GetByToken(ctx context.Context, token string) (session Session, err error) {

	result := m.Coll.FindOne(ctx, bson.D{{Key: "token", Value: token}})

	err = result.Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = serverError.UnauthorizedError.New()
		return
	}

	return
}

func (m MongoStore) Delete(ctx context.Context, token string) error {

	_, err := m.Coll.DeleteOne(ctx, bson.D{{Key: "token", Value: token}})
	return err
}
