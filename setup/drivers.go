package setup

// Database drivers used by the doctor connectivity check. Importing
// them here registers each with database/sql under the names DriverFor
// returns.
import (
	_ "github.com/go-sql-driver/mysql" // mysql
	_ "github.com/lib/pq"              // postgres
	_ "modernc.org/sqlite"             // sqlite
)
