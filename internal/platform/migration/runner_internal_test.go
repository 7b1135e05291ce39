// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestToPgx5DSN rewrites both postgres schemes and leaves others alone.
*/
func TestToPgx5DSN(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/cms", toPgx5DSN("postgres://u:p@db:5432/cms"))
	assert.Equal(t, "pgx5://u:p@db:5432/cms", toPgx5DSN("postgresql://u:p@db:5432/cms"))
	assert.Equal(t, "pgx5://u:p@db:5432/cms", toPgx5DSN("pgx5://u:p@db:5432/cms"))
}
