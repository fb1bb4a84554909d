package generator

import (
	"fmt"
	"time"

	"github.com/deicod/springhex/internal/naming"
)

// MigrationTimestamp renders at as yyyyMMddHHmmssSSS.
func MigrationTimestamp(at time.Time) string {
	return at.Format("20060102150405") + fmt.Sprintf("%03d", at.Nanosecond()/int(time.Millisecond))
}

// FlywayFileName returns V<timestamp>__<slug>.sql.
func FlywayFileName(name string, at time.Time) string {
	return "V" + MigrationTimestamp(at) + "__" + naming.Slug(name) + ".sql"
}

// FlywayRevertFileName returns V<timestamp>__revert_<slug>.sql.
func FlywayRevertFileName(original string, at time.Time) string {
	return "V" + MigrationTimestamp(at) + "__revert_" + naming.Slug(original) + ".sql"
}

// LiquibaseFileName returns <timestamp>_<slug>.<format>.
func LiquibaseFileName(name, format string, at time.Time) string {
	return MigrationTimestamp(at) + "_" + naming.Slug(name) + "." + format
}
