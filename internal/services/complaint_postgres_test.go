// complaint_postgres_test.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/localnerve/qms/internal/database"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Concurrent filings against a real Postgres sequence must never share a number.
func TestCreateComplaintConcurrentPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Postgres container test in short mode")
	}

	ctx := context.Background()
	tc, err := testutil.StartPostgres(ctx, t)
	if err != nil {
		t.Skipf("Postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { tc.Terminate(t) })

	log := zaptest.NewLogger(t)
	db, err := database.Connect(tc.Config, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db))

	eng := testutil.CreateUser(t, db, "eng", models.RoleQualityEngineer)
	svc := services.NewComplaintService(db, log)

	const filings = 25
	numbers := make(chan string, filings)
	var wg sync.WaitGroup
	for i := 0; i < filings; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := svc.Create(ctx, services.ComplaintInput{Title: fmt.Sprintf("Concurrent %d", i)}, eng.ID)
			if assert.NoError(t, err) {
				numbers <- c.ComplaintNumber
			}
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, filings)
	for n := range numbers {
		assert.False(t, seen[n], "duplicate complaint number %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, filings)

	var count int64
	require.NoError(t, db.Model(&models.EightDReport{}).Count(&count).Error)
	assert.Equal(t, int64(filings), count)
}
