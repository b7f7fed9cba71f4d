package main

import (
	"encoding/gob"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"goshop/internal/cart"
	"goshop/internal/models"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	session  *scs.SessionManager
	db       *models.MongoDB
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "goshop"
	}

	addr := flag.String("addr", ":4000", "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	db, err := models.OpenDB(uri, dbName)
	if err != nil {
		errorLog.Fatal(err)
	}
	infoLog.Println("Connected to database!")

	// Session carts round-trip through the scs codec.
	gob.Register(cart.Cart{})

	session := scs.New()
	session.Lifetime = 12 * time.Hour

	app := &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		session:  session,
		db:       models.NewMongoDB(db, errorLog),
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: errorLog,
		Handler:  app.routes(),
	}

	infoLog.Printf("Starting goshop API on %s", *addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}
