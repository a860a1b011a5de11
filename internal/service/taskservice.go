package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
	"github.com/rafisyahdn/go-dubbing-backend/internal/performance"
	"github.com/rafisyahdn/go-dubbing-backend/internal/repository"
)

// TaskService pulls subtask status records from the external task-service and
// stores them as raw history. Each record is parsed fail-soft: malformed
// numerics coerce to 0 and malformed dates to the zero time, never an error.
type TaskService struct {
	Repo    *repository.PostgresRepo
	Users   *repository.UserStore
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewTaskService(repo *repository.PostgresRepo, users *repository.UserStore, baseURL, token string) *TaskService {
	return &TaskService{
		Repo:    repo,
		Users:   users,
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *TaskService) doRequest(ctx context.Context, method, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	res, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("task service error %d: %s", res.StatusCode, string(body))
	}
	return body, nil
}

// SyncRecords pages through the task-service status history, stores every
// record, and upserts the assignees it sees into the user store. A sync run
// row is written whether the pull succeeds or fails.
func (s *TaskService) SyncRecords(ctx context.Context) (*model.SyncRun, error) {
	if s.BaseURL == "" {
		return nil, errors.New("task service url not configured")
	}

	run := &model.SyncRun{ID: uuid.NewString(), Status: "running"}
	started := time.Now()

	log.Println("=== start task-service sync, run", run.ID, "===")

	page := 0
	total := 0
	var syncErr error

	for {
		rawRecords, err := s.fetchPage(ctx, page)
		if err != nil {
			syncErr = err
			break
		}

		log.Printf("[page %d] found %d records", page, len(rawRecords))
		if len(rawRecords) == 0 {
			break
		}

		for _, raw := range rawRecords {
			rec := ParseStatusRecord(raw)
			if err := s.Repo.UpsertStatusRecord(ctx, &rec); err != nil {
				syncErr = err
				break
			}
			if rec.AssigneeID != 0 {
				user := &model.User{
					ID:         rec.AssigneeID,
					Name:       rec.AssigneeName,
					AvatarURL:  rec.AvatarURL,
					Experience: string(rec.Experience),
				}
				if err := s.Users.UpsertFromSync(user); err != nil {
					log.Printf("warning: failed to upsert user %d from record: %v", rec.AssigneeID, err)
				}
			}
			total++
		}
		if syncErr != nil {
			break
		}
		page++
	}

	run.RecordCount = total
	run.DurationMs = time.Since(started).Milliseconds()
	if syncErr != nil {
		run.Status = "failed"
		run.Details = syncErr.Error()
	} else {
		run.Status = "success"
	}
	if err := s.Repo.CreateSyncRun(ctx, run); err != nil {
		log.Println("warning: failed to record sync run:", err)
	}

	log.Println("=== sync complete, total:", total, "status:", run.Status, "===")
	if syncErr != nil {
		return run, syncErr
	}
	return run, nil
}

func (s *TaskService) fetchPage(ctx context.Context, page int) ([]map[string]interface{}, error) {
	url := fmt.Sprintf("%s/api/v1/tasks/status-history?page=%d", s.BaseURL, page)
	b, err := s.doRequest(ctx, http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	var out struct {
		Records []map[string]interface{} `json:"records"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// ParseStatusRecord maps one raw task-service record into a StatusRecord.
// The payload mixes flat keys with dotted subtask keys ("SubTask.estimated_hours")
// and stores spent time as separate hour/minute components, the hour part
// sometimes as a string.
func ParseStatusRecord(raw map[string]interface{}) model.StatusRecord {
	rec := model.StatusRecord{
		TaskID:       parseInt64(raw["task_id"]),
		SubtaskID:    parseInt64(firstValue(raw, "SubTask.id", "subtask_id")),
		AssigneeID:   parseInt64(raw["updated_by"]),
		AssigneeName: parseString(raw["assigned_user"]),
		Status:       model.ParseStatus(parseString(raw["status"])),
		Priority:     model.ParsePriority(parseString(firstValue(raw, "SubTask.priority", "priority"))),
		UpdatedAt:    parseTime(raw["updated_at"]),
		Experience:   model.ParseExperienceLevel(parseString(raw["work_experience_level"])),
	}

	rec.EstimatedHours = parseFloat(firstValue(raw, "SubTask.estimated_hours", "estimated_hours"))
	rec.SpentHours = parseFloat(raw["time_taken_in_hours"]) + parseFloat(raw["time_taken_in_minutes"])/60

	rec.AttachmentURLs = performance.ParseFileURLs(parseString(firstValue(raw, "SubTask.file_url", "file_url")))
	if avatar := performance.ParseFileURLs(parseString(raw["profile_image"])); len(avatar) > 0 {
		rec.AvatarURL = avatar[0]
	}

	return rec
}

// firstValue also checks the nested object form ("SubTask": {"estimated_hours": ...})
// for dotted keys, which some task-service versions send instead.
func firstValue(raw map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v
		}
		if dot := indexDot(key); dot > 0 {
			if obj, ok := raw[key[:dot]].(map[string]interface{}); ok {
				if v, ok := obj[key[dot+1:]]; ok && v != nil {
					return v
				}
			}
		}
	}
	return nil
}

func indexDot(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}

func parseString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func parseFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		if val == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
	}
	return 0
}

func parseInt64(v interface{}) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case string:
		if x, err := strconv.ParseInt(val, 10, 64); err == nil {
			return x
		}
	case json.Number:
		if x, err := val.Int64(); err == nil {
			return x
		}
	}
	return 0
}

func parseTime(v interface{}) time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
