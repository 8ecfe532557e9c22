// Container helpers for the integration and e2e tests and the standalone cmd/testcontainers runner.
// Settings come from the environment (optionally a .env file) with defaults for a local run.
//

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/pantrydb/data"
	"github.com/localnerve/pantrydb/internal/config"
	"github.com/localnerve/pantrydb/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// DatabaseSettings describes the database container and the credentials the service uses
type DatabaseSettings struct {
	Type         string
	Image        string
	Alias        string
	Port         string
	Database     string
	User         string
	Password     string
	RootPassword string
}

// DatabaseSettingsFromEnv reads DB_* variables, defaulting for dbType when they are unset
func DatabaseSettingsFromEnv(dbType string) DatabaseSettings {
	if dbType == "" {
		dbType = envOr("DB_TYPE", "postgres")
	}

	settings := DatabaseSettings{
		Type:         dbType,
		Alias:        envOr("DB_HOST", "pantry-db"),
		Database:     envOr("DB_DATABASE", "pantry"),
		User:         envOr("DB_USER", "pantry"),
		Password:     envOr("DB_PASSWORD", "pantry-secret"),
		RootPassword: envOr("DB_ROOT_PASSWORD", "root-secret"),
	}

	switch dbType {
	case "mysql", "mariadb":
		settings.Image = envOr("DB_IMAGE", "mariadb:11")
		settings.Port = envOr("DB_PORT", "3306")
	default:
		settings.Image = envOr("DB_IMAGE", "postgres:17-alpine")
		settings.Port = envOr("DB_PORT", "5432")
	}

	return settings
}

type TestContainers struct {
	Settings                 DatabaseSettings
	Network                  *testcontainers.DockerNetwork
	DBContainer              testcontainers.Container
	PantryDBContainer        testcontainers.Container
	PantryDBBuilderContainer testcontainers.Container

	// host side address of the database and the service
	DBHost  string
	DBPort  string
	BaseURL string
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.PantryDBContainer != nil {
		if err := tc.PantryDBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate PantryDB: %v", err)
		}
	}
	if tc.PantryDBBuilderContainer != nil {
		if err := tc.PantryDBBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate PantryDB Builder: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", tc.Settings.Type, err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// Config returns a service configuration pointing at the database container from the host
func (tc *TestContainers) Config() *config.Config {
	return &config.Config{
		DBType:            tc.Settings.Type,
		DBHost:            tc.DBHost,
		DBPort:            tc.DBPort,
		DBDatabase:        tc.Settings.Database,
		DBUser:            tc.Settings.User,
		DBPassword:        tc.Settings.Password,
		DBConnectionLimit: 5,
		DBLogLevel:        "silent",
	}
}

// StartDatabase starts a network and a database container, then creates and seeds the schema
func StartDatabase(t *testing.T, settings DatabaseSettings) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{Settings: settings}

	// Create a network
	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	testContainers.Network = nw
	networkName := nw.Name

	tcpDbPort, err := nat.NewPort("tcp", settings.Port)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	var waitStrategy wait.Strategy = wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second)
	if settings.Type == "postgres" {
		// the entrypoint restarts the server once after running its init
		waitStrategy = wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(tcpDbPort),
		).WithDeadline(60 * time.Second)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        settings.Image,
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          getDBInitEnvMap(settings),
			WaitingFor:   waitStrategy,
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {settings.Alias},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to start %s: %w", settings.Type, err)
	}
	testContainers.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	testContainers.DBHost = dbHost
	testContainers.DBPort = dbPort.Port()
	logMessage(t, "DB_HOST=%s DB_PORT=%s", dbHost, dbPort.Port())

	// Initialize the database
	switch settings.Type {
	case "postgres":
		err = performPostgresDBInit(testContainers)
	case "mysql", "mariadb":
		err = performMySqlDBInit(testContainers)
	default:
		err = fmt.Errorf("unsupported database type for containers: %s", settings.Type)
	}
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return testContainers, nil
}

// CreateAllTestContainers starts the database from the environment and a PantryDB service
// container built from the repository Dockerfile
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	debugContainer := os.Getenv("DEBUG_CONTAINER")

	testContainers, err := StartDatabase(t, DatabaseSettingsFromEnv(""))
	if err != nil {
		return nil, err
	}
	settings := testContainers.Settings

	imageName := "pantrydb-test:latest"

	// Check if image exists
	imageExists, err := imageExists(ctx, imageName)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to check if image exists: %w", err)
	}

	pantrydbPortNumber := envOr("PORT", "8111")
	tcpPantrydbPort, err := nat.NewPort("tcp", pantrydbPortNumber)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to create PantryDB port: %w", err)
	}

	pantrydbExposedPorts := []string{string(tcpPantrydbPort)}
	if debugContainer == "true" {
		pantrydbExposedPorts = append(pantrydbExposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"}, // Force local 2345
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy
	waitStrategy = wait.ForHTTP("/health").WithPort(tcpPantrydbPort).WithStartupTimeout(30 * time.Second)
	if debugContainer == "true" {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	// Create PantryDB container request (we add to it later)
	pantrydbContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: pantrydbExposedPorts,
		Env: map[string]string{
			"DB_TYPE":             settings.Type,
			"DB_HOST":             settings.Alias,
			"DB_PORT":             settings.Port,
			"DB_DATABASE":         settings.Database,
			"DB_USER":             settings.User,
			"DB_PASSWORD":         settings.Password,
			"DB_CONNECTION_LIMIT": envOr("DB_CONNECTION_LIMIT", "5"),
			"DB_AUTO_MIGRATE":     "false",
			"PORT":                pantrydbPortNumber,
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{testContainers.Network.Name},
	}

	if debugContainer == "true" {
		pantrydbContainerRequest.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./pantrydb",
		}
	}

	if !imageExists {
		// Build PantryDB builder image and add fromDockerfile to PantryDB container request
		pantrydbResourceReaperSessionID := uuid.New().String()

		pantrydbBuildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &pantrydbResourceReaperSessionID,
		}
		if debugContainer == "true" {
			pantrydbBuildArgs["DEBUG"] = &debugContainer
		}

		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", imageName)
		pantrydbBuilderContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "pantrydb-test-builder",
					Tag:        "latest",
					BuildArgs:  pantrydbBuildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder" // Build specific stage
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			testContainers.Terminate(t)
			return nil, fmt.Errorf("failed to build pantrydb-test-builder: %w", err)
		}
		testContainers.PantryDBBuilderContainer = pantrydbBuilderContainer

		imageNameParts := strings.Split(imageName, ":")
		pantrydbContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true, // Keep the image so we can reuse it
			BuildArgs:  pantrydbBuildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", imageName)
		pantrydbContainerRequest.Image = imageName
	}

	// Create and start the PantryDB container
	pantrydbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pantrydbContainerRequest,
		Started:          true,
	})
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to start PantryDB: %w", err)
	}
	testContainers.PantryDBContainer = pantrydbContainer

	// Log the localhost and mapped ports for PantryDB
	pantrydbHost, _ := pantrydbContainer.Host(ctx)
	pantrydbPort, _ := pantrydbContainer.MappedPort(ctx, tcpPantrydbPort)
	testContainers.BaseURL = fmt.Sprintf("http://%s:%s", pantrydbHost, pantrydbPort.Port())
	logMessage(t, "BASE_URL=%s", testContainers.BaseURL)

	logMessage(t, "PantryDB testcontainer started successfully")
	return testContainers, nil
}

func getDBInitEnvMap(settings DatabaseSettings) map[string]string {
	switch settings.Type {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": settings.Password,
			"POSTGRES_USER":     settings.User,
			"POSTGRES_DB":       settings.Database,
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": settings.RootPassword,
			"MYSQL_DATABASE":      settings.Database,
			"MYSQL_USER":          settings.User,
			"MYSQL_PASSWORD":      settings.Password,
		}
	}
	return nil
}

func performMySqlDBInit(tc *TestContainers) error {
	settings := tc.Settings
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", settings.RootPassword, tc.DBHost, tc.DBPort))
	if err != nil {
		return fmt.Errorf("failed to connect to MariaDB for setup: %w", err)
	}
	defer db.Close()

	if err := waitForPing(db, 30); err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", settings.Database),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", settings.User, settings.Password),
		fmt.Sprintf("GRANT SELECT, INSERT, UPDATE, DELETE ON %s.* TO '%s'@'%%'", settings.Database, settings.User),
		"FLUSH PRIVILEGES",
		fmt.Sprintf("USE %s", settings.Database),
	}
	// USE only holds for one connection
	db.SetMaxOpenConns(1)
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}

	for _, script := range data.InitScripts(settings.Type) {
		if err := executeSQL(db, script); err != nil {
			return fmt.Errorf("failed to execute %s init sql: %w", settings.Type, err)
		}
	}

	return nil
}

func performPostgresDBInit(tc *TestContainers) error {
	gormDB, err := database.Connect(tc.Config(), zap.NewNop())
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres for setup: %w", err)
	}
	defer database.Close(gormDB)

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := waitForPing(db, 30); err != nil {
		return fmt.Errorf("Postgres not ready after 30 seconds: %w", err)
	}

	for _, script := range data.InitScripts(tc.Settings.Type) {
		if err := executeSQL(db, script); err != nil {
			return fmt.Errorf("failed to execute %s init sql: %w", tc.Settings.Type, err)
		}
	}

	return nil
}

func waitForPing(db *sql.DB, seconds int) error {
	var err error
	for i := 0; i < seconds; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return err
}

func executeSQL(db *sql.DB, sql string) error {
	lines := strings.Split(sql, "\n")

	var ncls []string
	for _, l := range lines {
		ncls = append(ncls, excludeComment(l))
	}

	l := strings.Join(ncls, "\n")
	queries := strings.Split(l, ";")
	queries = queries[:len(queries)-1]

	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

func excludeComment(line string) string {
	d := "\""
	s := "'"
	c := "--"

	var nc string
	ck := line
	mx := len(line) + 1

	for {
		if len(ck) == 0 {
			return nc
		}

		di := strings.Index(ck, d)
		si := strings.Index(ck, s)
		ci := strings.Index(ck, c)

		if di < 0 {
			di = mx
		}
		if si < 0 {
			si = mx
		}
		if ci < 0 {
			ci = mx
		}

		var ei int

		if di < si && di < ci {
			nc += ck[:di+1]
			ck = ck[di+1:]
			ei = strings.Index(ck, d)
		} else if si < di && si < ci {
			nc += ck[:si+1]
			ck = ck[si+1:]
			ei = strings.Index(ck, s)
		} else if ci < di && ci < si {
			return nc + ck[:ci]
		} else {
			return nc + ck
		}

		nc += ck[:ei+1]
		ck = ck[ei+1:]
	}
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, image := range images {
		for _, tag := range image.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
