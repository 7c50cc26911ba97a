package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/loviluz/remittance.api.loviluz.es/config"
	"github.com/loviluz/remittance.api.loviluz.es/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// MongoDatabaseInterface is an interface that describes the mongodb database
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// MongoService is an implementation of the DAO interface backed by mongodb
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(fmt.Errorf("error connecting to mongodb: %s", err))
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should be fatal
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	return client
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// NewDAOService returns a new Mongo service using the provided config
func NewDAOService(cfg *config.Config) *MongoService {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:             database,
		CollectionName: cfg.Collection,
	}
}

// CreateRemittanceRunResource writes a new remittance run to the DB
func (m *MongoService) CreateRemittanceRunResource(runResource *models.RemittanceRunDB) error {
	collection := m.db.Collection(m.CollectionName)
	_, err := collection.InsertOne(context.Background(), runResource)

	return err
}

// GetRemittanceRunResource gets a remittance run from the DB
// If the run is not found in the DB, return nil with no error
func (m *MongoService) GetRemittanceRunResource(id string) (*models.RemittanceRunDB, error) {
	var resource models.RemittanceRunDB

	collection := m.db.Collection(m.CollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Info("no remittance run found", log.Data{"remittance_id": id})
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}
