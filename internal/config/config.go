package config // package config loads application configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types

    "github.com/joho/godotenv" // loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The only required variable is JWT_SECRET: the
// process refuses to start without a signing secret.  Everything else falls
// back to a sensible local default so the app runs out of the box against a
// local MySQL instance.
type Config struct {
    Env        string // application environment (e.g. "dev", "prod")
    Port       string // HTTP port to listen on
    DBUser     string // database username
    DBPass     string // database password (optional)
    DBHost     string // database host address
    DBPort     string // database port number
    DBName     string // database name
    JWTSecret  string // secret used to sign session tokens (required)
    BcryptCost int    // bcrypt cost for password hashing
    UploadDir  string // directory for uploaded cover images
}

// Load reads configuration from the environment, consulting a .env file
// first.  A missing JWT_SECRET is fatal; the store address falls back to a
// local default.
func Load() Config {
    _ = godotenv.Load() // best effort; real env vars win over the file

    return Config{
        Env:        getenv("APP_ENV", "dev"),
        Port:       getenv("APP_PORT", "8000"),
        DBUser:     getenv("DB_USER", "root"),
        DBPass:     os.Getenv("DB_PASS"), // empty allowed
        DBHost:     getenv("DB_HOST", "localhost"),
        DBPort:     getenv("DB_PORT", "3306"),
        DBName:     getenv("DB_NAME", "blogify"),
        JWTSecret:  must("JWT_SECRET"),
        BcryptCost: getenvInt("BCRYPT_COST", 10),
        UploadDir:  getenv("UPLOAD_DIR", "./public/uploads"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func getenvInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, v)
    }
    return n
}
