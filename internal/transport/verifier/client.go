// Package verifier клиент внешнего сервиса AI проверки видео.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/fsdevblog/groph-auction/internal/domain"
)

const (
	RoutePredict    = "/predict/"
	RouteAuctionAdd = "/auction/add/"
)

// maxErrorBody сколько байт тела ответа с ошибкой сохраняется в StatusCodeError.
const maxErrorBody = 512

// HTTPClient является реализацией интерфейса service.VerifierClient для HTTP запросов к сервису проверки.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// Predict отправляет видео и описание на проверку и возвращает вердикт accepted или rejected.
//
// Тело ответа может быть как голым токеном, так и JSON объектом с полем status. Регистр и пробелы
// по краям не учитываются. Ошибки:
//   - *StatusCodeError при ответе отличном от 2xx (оборачивает domain.ErrUpstreamUnavailable);
//   - *UnexpectedResponseError если вердикт не распознан (оборачивает domain.ErrUpstreamUnexpectedResponse);
//   - domain.ErrUpstreamUnavailable вместе с исходной ошибкой для сетевых ошибок и таймаутов.
func (c HTTPClient) Predict(ctx context.Context, payload domain.VerificationPayload) (domain.AIStatusType, error) {
	body, err := c.post(ctx, RoutePredict, payload)
	if err != nil {
		return "", err
	}
	return parseVerdict(body)
}

// RegisterAuction сообщает сервису о новом проверенном лоте. Тело ответа не анализируется.
func (c HTTPClient) RegisterAuction(ctx context.Context, payload domain.VerificationPayload) error {
	_, err := c.post(ctx, RouteAuctionAdd, payload)
	return err
}

//nolint:nonamedreturns
func (c HTTPClient) post(ctx context.Context, route string, payload domain.VerificationPayload) (body []byte, err error) {
	form, contentType, formErr := buildForm(payload)
	if formErr != nil {
		return nil, formErr
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, form)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json, text/plain")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w: %w", domain.ErrUpstreamUnavailable, doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, NewStatusCodeError(resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %w: %w", domain.ErrUpstreamUnavailable, readErr)
	}
	return body, nil
}

// buildForm собирает multipart форму с полями video и description.
func buildForm(payload domain.VerificationPayload) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	fileName := payload.FileName
	if fileName == "" {
		fileName = "video"
	}
	contentType := payload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="video"; filename="%s"`, escapeQuotes(fileName)))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create video part: %s", err.Error())
	}
	if _, err = part.Write(payload.Video); err != nil {
		return nil, "", fmt.Errorf("write video part: %s", err.Error())
	}
	if err = w.WriteField("description", payload.Description); err != nil {
		return nil, "", fmt.Errorf("write description: %s", err.Error())
	}
	if err = w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %s", err.Error())
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

type verdictResponse struct {
	Status string `json:"status"`
}

// parseVerdict разбирает тело ответа: JSON объект {"status": ...}, JSON строку или голый токен.
func parseVerdict(body []byte) (domain.AIStatusType, error) {
	raw := strings.TrimSpace(string(body))

	token := raw
	var obj verdictResponse
	var str string
	switch {
	case json.Unmarshal([]byte(raw), &obj) == nil && obj.Status != "":
		token = obj.Status
	case json.Unmarshal([]byte(raw), &str) == nil:
		token = str
	}

	switch verdict := domain.AIStatusType(strings.ToLower(strings.TrimSpace(token))); verdict {
	case domain.AIStatusAccepted, domain.AIStatusRejected:
		return verdict, nil
	default:
		return "", NewUnexpectedResponseError(raw)
	}
}
