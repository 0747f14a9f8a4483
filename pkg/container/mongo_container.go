package container

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	mongo "go.mongodb.org/mongo-driver/v2/mongo"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoContainerConnection struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// URI returns the connection string for the root user
func (c MongoContainerConnection) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", c.Username, c.Password, c.Host, c.Port)
}

const (
	mongoDBPort  = 27017
	mongoImage   = "mongo"
	mongoVersion = "8.2.2"
)

// RunMongoContainer starts a MongoDB container named name, or adopts a running
// one with that name, and waits until it answers a ping.
func RunMongoContainer(builder *ContainerBuilder, name string, conn MongoContainerConnection) (MongoContainerConnection, error) {
	privatePort := strconv.Itoa(mongoDBPort) + "/tcp"
	existing, err := builder.FindContainer(name)
	if err != nil {
		return MongoContainerConnection{}, err
	}
	if existing != nil && existing.State == "running" {
		for _, bind := range existing.Ports {
			if bind.PrivatePort != mongoDBPort || bind.PublicPort == 0 {
				continue
			}
			builder.AddContainer(existing.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})
			conn.Host = bind.IP
			conn.Port = strconv.FormatInt(bind.PublicPort, 10)
			return conn, nil
		}
		return MongoContainerConnection{}, fmt.Errorf("no public port for mongo container %s", name)
	}

	runOptions := dockertest.RunOptions{
		Name:       name,
		Repository: mongoImage,
		Tag:        mongoVersion,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + conn.Username,
			"MONGO_INITDB_ROOT_PASSWORD=" + conn.Password,
		},
	}
	if conn.Database != "" {
		runOptions.Env = append(runOptions.Env, "MONGO_INITDB_DATABASE="+conn.Database)
	}
	if conn.Port != "" {
		runOptions.PortBindings = map[docker.Port][]docker.PortBinding{
			docker.Port(privatePort): {{HostIP: "127.0.0.1", HostPort: conn.Port}},
		}
	}

	resource, err := builder.RunWithOptions(&runOptions)
	if err != nil {
		return MongoContainerConnection{}, err
	}
	builder.AddContainer(resource.Container.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})
	conn.Host = resource.GetBoundIP(privatePort)
	conn.Port = resource.GetPort(privatePort)

	err = builder.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		client, err := mongo.Connect(mongooption.Client().ApplyURI(conn.URI()))
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(ctx) }()
		return client.Ping(ctx, nil)
	})
	if err != nil {
		return MongoContainerConnection{}, fmt.Errorf("wait for mongo container %s, err: %w", name, err)
	}
	return conn, nil
}
