package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/pantrydb/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the pantrydb database and service testcontainers with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

Variables: DB_TYPE (postgres|mariadb), DB_IMAGE, DB_HOST (network alias), DB_PORT,
DB_DATABASE, DB_USER, DB_PASSWORD, DB_ROOT_PASSWORD, DB_CONNECTION_LIMIT, PORT,
DEBUG_CONTAINER, TESTCONTAINERS_BUILD_CONTEXT (default: current directory)

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	if os.Getenv("TESTCONTAINERS_BUILD_CONTEXT") == "" {
		os.Setenv("TESTCONTAINERS_BUILD_CONTEXT", ".")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	started := make(chan *testutil.TestContainers, 1)
	go func() {
		testContainers, err := testutil.CreateAllTestContainers(nil)
		if err != nil {
			log.Fatalf("Failed to create test containers: %v\n", err)
		}
		started <- testContainers
	}()

	var testContainers *testutil.TestContainers
	select {
	case testContainers = <-started:
		log.Printf("Containers running, waiting for a signal to stop\n")
		sig := <-sigs
		log.Printf("\nReceived signal: %v, terminating test containers...\n", sig)
	case sig := <-sigs:
		log.Printf("\nReceived signal: %v before startup finished, exiting\n", sig)
	}

	if testContainers != nil {
		testContainers.Terminate(nil)
	}
}
