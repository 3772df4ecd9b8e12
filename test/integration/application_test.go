package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func jobApplicationCount(t *testing.T, ts *helpers.TestServer, jobID string) int {
	var job models.Job
	require.NoError(t, ts.DB.First(&job, "id = ?", jobID).Error)
	return job.ApplicationCount
}

// The full submission lifecycle: submit bumps the counter, a duplicate
// is rejected without touching it, withdrawal is blocked once the
// application leaves pending.
func TestApplication_SubmitLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	recruiterToken, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	seekerToken, seeker := helpers.CreateAndLoginUser(t, ts, "U1", uniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Lifecycle Job", "Berlin", models.JobStatusActive)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/applications", seekerToken, map[string]interface{}{
		"jobId":       job.ID,
		"coverLetter": "I am a great fit.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "submit failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"status":"pending"`)
	assert.Equal(t, 1, jobApplicationCount(t, ts, job.ID), "counter should be 1 after first submission")

	var created struct {
		Application struct {
			ID string `json:"id"`
		} `json:"application"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	appID := created.Application.ID

	// Second submission to the same job: conflict, no new row, counter
	// unchanged.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/applications", seekerToken, map[string]interface{}{
		"jobId": job.ID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "duplicate should be rejected: %s", bodyStr)
	assert.Equal(t, 1, jobApplicationCount(t, ts, job.ID), "counter must not move on duplicate")

	// A racing insert that reaches the unique index must surface as a
	// duplicate, not as an opaque database error.
	dup := models.Application{JobID: job.ID, ApplicantID: seeker.ID, Status: models.ApplicationStatusPending}
	assert.ErrorIs(t, ts.DB.Create(&dup).Error, gorm.ErrDuplicatedKey)

	// The recruiter shortlists it.
	res, bodyStr = ts.SendRequest(t, http.MethodPatch, "/applications/"+appID+"/status", recruiterToken, map[string]interface{}{
		"status": "shortlisted",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "status update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"status":"shortlisted"`)

	// Withdrawal is no longer possible; nothing changes.
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/applications/"+appID, seekerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "non-pending withdrawal should fail: %s", bodyStr)
	assert.Equal(t, 1, jobApplicationCount(t, ts, job.ID))
}

func TestApplication_WithdrawPending(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	seekerToken, seeker := helpers.CreateAndLoginUser(t, ts, "U1", uniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Withdraw Job", "Berlin", models.JobStatusActive)
	app := CreateTestApplication(t, ts.DB, job.ID, seeker.ID, models.ApplicationStatusPending)
	require.Equal(t, 1, jobApplicationCount(t, ts, job.ID))

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/applications/"+app.ID, seekerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "withdraw failed: %s", bodyStr)
	assert.Equal(t, 0, jobApplicationCount(t, ts, job.ID), "counter should return to 0")

	var count int64
	ts.DB.Model(&models.Application{}).Where("id = ?", app.ID).Count(&count)
	assert.EqualValues(t, 0, count, "application row should be gone")
}

func TestApplication_SubmitGuards(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	seekerToken, _ := helpers.CreateAndLoginUser(t, ts, "U1", uniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)

	closedJob := CreateTestJob(t, ts.DB, recruiter.ID, "Closed Job", "Berlin", models.JobStatusClosed)
	draftJob := CreateTestJob(t, ts.DB, recruiter.ID, "Draft Job", "Berlin", models.JobStatusDraft)

	// Non-active jobs read as absent to applicants.
	for _, jobID := range []string{closedJob.ID, draftJob.ID} {
		res, _ := ts.SendRequest(t, http.MethodPost, "/applications", seekerToken, map[string]interface{}{
			"jobId": jobID,
		})
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, 0, jobApplicationCount(t, ts, jobID))
	}

	// Unknown job.
	res, _ := ts.SendRequest(t, http.MethodPost, "/applications", seekerToken, map[string]interface{}{
		"jobId": "aaaaaaaaaaaaaaaaaaaaaaaa",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Malformed job ID fails validation before any lookup.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/applications", seekerToken, map[string]interface{}{
		"jobId": "short-id",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "jobId")
}

func TestApplication_ListsAndVisibility(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	recruiterToken, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	otherRecToken, _ := helpers.CreateAndLoginUser(t, ts, "R2", uniqueEmail("recruiter2"), "password123", models.UserRoleRecruiter)
	seekerToken, seeker := helpers.CreateAndLoginUser(t, ts, "U1", uniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)
	strangerToken, _ := helpers.CreateAndLoginUser(t, ts, "U2", uniqueEmail("stranger"), "password123", models.UserRoleJobSeeker)

	jobA := CreateTestJob(t, ts.DB, recruiter.ID, "Job A", "Berlin", models.JobStatusActive)
	jobB := CreateTestJob(t, ts.DB, recruiter.ID, "Job B", "Paris", models.JobStatusActive)

	appA := CreateTestApplication(t, ts.DB, jobA.ID, seeker.ID, models.ApplicationStatusPending)
	CreateTestApplication(t, ts.DB, jobB.ID, seeker.ID, models.ApplicationStatusShortlisted)

	// The seeker sees their own applications with job summaries.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/applications/user", seekerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "user listing failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"totalApplications":2`)
	assert.Contains(t, bodyStr, "Job A")
	assert.Contains(t, bodyStr, "Job B")

	// The owner sees a single job's queue with status buckets.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/applications/job/"+jobA.ID, recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "job listing failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"totalApplications":1`)
	assert.Contains(t, bodyStr, `"statusCounts"`)
	assert.Contains(t, bodyStr, `"pending":1`)

	// And the cross-job recruiter view aggregates both.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/applications/recruiter", recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "recruiter listing failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"totalApplications":2`)
	assert.Contains(t, bodyStr, `"shortlisted":1`)

	// Status filter narrows without breaking the buckets.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/applications/recruiter?status=pending", recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"totalApplications":1`)
	assert.Contains(t, bodyStr, `"shortlisted":1`, "buckets ignore the status filter")

	// A recruiter with no jobs gets an empty page, not an error.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/applications/recruiter", otherRecToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"applications":[]`)

	// Another recruiter may not read jobA's queue.
	res, _ = ts.SendRequest(t, http.MethodGet, "/applications/job/"+jobA.ID, otherRecToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Single application: visible to applicant and job owner only.
	res, _ = ts.SendRequest(t, http.MethodGet, "/applications/"+appA.ID, seekerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/applications/"+appA.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/applications/"+appA.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplication_StatusUpdateRules(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	recruiterToken, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	otherRecToken, _ := helpers.CreateAndLoginUser(t, ts, "R2", uniqueEmail("recruiter2"), "password123", models.UserRoleRecruiter)
	_, seeker := helpers.CreateAndLoginUser(t, ts, "U1", uniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Review Job", "Berlin", models.JobStatusActive)
	app := CreateTestApplication(t, ts.DB, job.ID, seeker.ID, models.ApplicationStatusPending)

	var before models.Application
	require.NoError(t, ts.DB.First(&before, "id = ?", app.ID).Error)

	// Unknown status value fails validation.
	res, _ := ts.SendRequest(t, http.MethodPatch, "/applications/"+app.ID+"/status", recruiterToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// A different recruiter may not review it.
	res, _ = ts.SendRequest(t, http.MethodPatch, "/applications/"+app.ID+"/status", otherRecToken, map[string]interface{}{
		"status": "reviewed",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The owner may, with notes.
	res, bodyStr := ts.SendRequest(t, http.MethodPatch, "/applications/"+app.ID+"/status", recruiterToken, map[string]interface{}{
		"status": "hired",
		"notes":  "Great interview",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "status update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"status":"hired"`)
	assert.Contains(t, bodyStr, "Great interview")

	// The envelope reflects the row as written, timestamp included.
	var updated struct {
		Application struct {
			UpdatedAt time.Time `json:"updatedAt"`
		} `json:"application"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.True(t, updated.Application.UpdatedAt.After(before.UpdatedAt), "updatedAt should move with the status change")
}

// The review queue pages ten at a time unless the caller asks otherwise.
func TestApplication_ListDefaultPageSize(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	recruiterToken, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	job := CreateTestJob(t, ts.DB, recruiter.ID, "Popular Job", "Berlin", models.JobStatusActive)

	for i := 0; i < 11; i++ {
		seeker := &models.User{
			Name:         fmt.Sprintf("Seeker %02d", i),
			Email:        uniqueEmail("seeker"),
			PasswordHash: "password123",
			Role:         models.UserRoleJobSeeker,
		}
		helpers.CreateUser(t, ts.DB, seeker)
		CreateTestApplication(t, ts.DB, job.ID, seeker.ID, models.ApplicationStatusPending)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/applications/job/"+job.ID, recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "job listing failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"totalApplications":11`)
	assert.Contains(t, bodyStr, `"numOfPages":2`)

	var page struct {
		Applications []json.RawMessage `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &page))
	assert.Len(t, page.Applications, 10, "default page holds ten applications")
}

// Deleting a job takes its applications with it in one transaction.
func TestApplication_JobDeleteCascade(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	recruiterToken, recruiter := helpers.CreateAndLoginUser(t, ts, "R1", uniqueEmail("recruiter"), "password123", models.UserRoleRecruiter)
	_, seeker := helpers.CreateAndLoginUser(t, ts, "U1", uniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)

	job := CreateTestJob(t, ts.DB, recruiter.ID, "Doomed Job", "Berlin", models.JobStatusActive)
	CreateTestApplication(t, ts.DB, job.ID, seeker.ID, models.ApplicationStatusPending)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/jobs/"+job.ID, recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "job delete failed: %s", bodyStr)

	var orphans int64
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&orphans)
	assert.EqualValues(t, 0, orphans, "no orphaned applications may remain")
}
