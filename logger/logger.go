package veritrans_integration_logger

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/json"
	viModels "github.com/voxtmault/veritrans-integration/models"
	viUtil "github.com/voxtmault/veritrans-integration/utils"
)

const jsonMediaType = "application/json"

var logChan chan *viModels.GatewayLog
var workerDone chan struct{}
var dbCon *sql.DB
var logVal *validator.Validate
var minifier *minify.M
var cancelFunc context.CancelFunc
var logMutex sync.RWMutex

// InitLogger starts the egress log worker. Until it is called LogRequest is a no-op.
func InitLogger(db *sql.DB) {
	logMutex.Lock()
	defer logMutex.Unlock()

	// init the channel
	logChan = make(chan *viModels.GatewayLog, 100)
	workerDone = make(chan struct{})
	dbCon = db
	logVal = viUtil.GetValidator()

	minifier = minify.New()
	minifier.AddFunc(jsonMediaType, json.Minify)

	ctx, cancel := context.WithCancel(context.Background())
	cancelFunc = cancel

	// start the log worker
	go logWorker(ctx, logChan, workerDone)
}

// CloseLogger flushes the queued logs and stops the worker.
func CloseLogger() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logChan == nil {
		return
	}

	close(logChan)
	<-workerDone
	cancelFunc()
	logChan = nil
}

// LogRequest queues a log without blocking the request path. Logs are dropped when the queue
// is full.
func LogRequest(log *viModels.GatewayLog) {
	logMutex.RLock()
	defer logMutex.RUnlock()

	if logChan == nil || log == nil {
		return
	}

	select {
	case logChan <- log:
	default:
		slog.Warn("egress log queue is full, dropping log", "request_id", log.RequestID)
	}
}

func logWorker(ctx context.Context, logs <-chan *viModels.GatewayLog, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("logger worker is stopped")
			return
		case log, ok := <-logs:
			if !ok {
				slog.Debug("log channel closed, logger worker is stopped")
				return
			}

			// Validate the obj before passing it to the core function
			if err := logVal.Struct(log); err != nil {
				slog.Error("failed to validate log", "reason", err)
				continue
			}

			if err := logEgress(ctx, log); err != nil {
				slog.Error("failed to log gateway egress", "reason", err)
			}
		}
	}
}

// minifyBody compacts a JSON body, anything that is not JSON is stored as is.
func minifyBody(body string) string {
	if body == "" || minifier == nil {
		return body
	}

	minified, err := minifier.String(jsonMediaType, body)
	if err != nil {
		slog.Debug("response body is not minifiable json", "reason", err)
		return body
	}

	return minified
}

func GetEgressLogs(ctx context.Context, filter *viModels.GatewayLogSearchFilter) ([]*viModels.GatewayLogPublic, *viModels.PaginationMetadata, error) {
	if filter == nil {
		return nil, nil, eris.New("egress log filter is nil")
	}

	// Validate the filter before it shapes the query, a zero page would underflow the offset
	if err := viUtil.ValidateStruct(ctx, filter); err != nil {
		return nil, nil, eris.Wrap(err, "invalid egress log filter")
	}

	if dbCon == nil {
		return nil, nil, eris.New("logger is not initialized")
	}

	arrObj := []*viModels.GatewayLogPublic{}
	pageMeta := viModels.PaginationMetadata{
		CurrentLimit: filter.Limit,
		CurrentPage:  filter.PageNumber,
	}

	var args []interface{}

	statement := fmt.Sprintf(`
	SELECT id, request_id, http_method, relative_path, response_code, response_body,
		   error_message, latency, created_at
	FROM %s
	WHERE 1 = 1
	`, viUtil.EgressLogTable)
	pagination := fmt.Sprintf(`
	SELECT COUNT(id) FROM %s WHERE 1 = 1
	`, viUtil.EgressLogTable)

	if filter.RequestID != "" {
		statement += " AND request_id = ?"
		pagination += " AND request_id = ?"
		args = append(args, filter.RequestID)
	}
	if filter.HTTPMethod != "" {
		statement += " AND http_method = ?"
		pagination += " AND http_method = ?"
		args = append(args, filter.HTTPMethod)
	}
	if filter.RelativePath != "" {
		statement += " AND relative_path = ?"
		pagination += " AND relative_path = ?"
		args = append(args, filter.RelativePath)
	}
	if filter.ResponseCode > 0 {
		statement += " AND response_code = ?"
		pagination += " AND response_code = ?"
		args = append(args, filter.ResponseCode)
	}
	if filter.StartDateRange != "" {
		statement += " AND DATE(created_at) >= ?"
		pagination += " AND DATE(created_at) >= ?"
		args = append(args, filter.StartDateRange)
	}
	if filter.EndDateRange != "" {
		statement += " AND DATE(created_at) <= ?"
		pagination += " AND DATE(created_at) <= ?"
		args = append(args, filter.EndDateRange)
	}

	offset := (filter.PageNumber - 1) * filter.Limit
	statement += " ORDER BY created_at DESC LIMIT ? OFFSET ? "

	args = append(args, filter.Limit, offset)
	rows, err := dbCon.QueryContext(ctx, statement, args...)
	if err != nil {
		slog.Error("failed to query context", "reason", err)
		return nil, nil, eris.Wrap(err, "failed to query context")
	}
	defer rows.Close()

	for rows.Next() {
		var obj viModels.GatewayLogPublic
		if err = rows.Scan(
			&obj.ID, &obj.RequestID, &obj.HTTPMethod, &obj.RelativePath, &obj.ResponseCode,
			&obj.ResponseBody, &obj.ErrorMessage, &obj.Latency, &obj.CreatedAt,
		); err != nil {
			slog.Error("failed to scan rows", "reason", err)
			return nil, nil, eris.Wrap(err, "failed to scan rows")
		}

		arrObj = append(arrObj, &obj)
	}

	if err := ProcessPaginationRequest(ctx, dbCon, pagination, args, &pageMeta); err != nil {
		slog.Error("failed to process pagination request", "reason", err)
		return nil, nil, eris.Wrap(err, "failed to process pagination request")
	}

	return arrObj, &pageMeta, nil
}

// Internal Functions

func logEgress(ctx context.Context, log *viModels.GatewayLog) error {
	tx, err := dbCon.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "reason", err)
		return eris.Wrap(err, "failed to begin transaction")
	}

	log.Latency = log.EndAt.Sub(log.BeginAt).String()

	statement := fmt.Sprintf(`
	INSERT INTO %s (request_id, http_method, relative_path, response_code, response_body,
					error_message, latency)
	VALUES (?,?,?,?,?,?,?)
	`, viUtil.EgressLogTable)
	if _, err = tx.ExecContext(ctx, statement,
		log.RequestID, log.HTTPMethod, log.RelativePath, log.ResponseCode, minifyBody(log.ResponseBody),
		log.ErrorMessage, log.Latency,
	); err != nil {
		tx.Rollback()
		slog.Error("failed to exec statement", "reason", err)
		return eris.Wrap(err, "failed to exec statement")
	}

	if err = tx.Commit(); err != nil {
		tx.Rollback()
		slog.Error("failed to commit transaction", "reason", err)
		return eris.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func ProcessPaginationRequest(ctx context.Context, con *sql.DB, statement string, args []interface{}, metadata *viModels.PaginationMetadata) error {

	// LIMIT and OFFSET are not part of the count query
	args = RemoveLastTwoItems(args)
	if err := con.QueryRowContext(ctx, statement, args...).Scan(&metadata.TotalRecords); err != nil {
		slog.Error("failed to get egress log count", "error", err)
		return eris.Wrap(err, "failed to get egress log count")
	}

	if metadata.CurrentLimit > 0 {
		metadata.TotalPages = (metadata.TotalRecords + metadata.CurrentLimit - 1) / metadata.CurrentLimit
	}

	return nil
}

func RemoveLastTwoItems[T any](slice []T) []T {
	if len(slice) < 2 {
		return []T{} // Return an empty slice if there are fewer than 2 items
	}
	return slice[:len(slice)-2]
}
