package testutils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest выполняет запрос к роутеру через httptest и возвращает записанный ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) *http.Response {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result()
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

func WithJSON() func(*RequestOptions) {
	return WithHeader("Content-Type", "application/json")
}

func WithBearer(token string) func(*RequestOptions) {
	return WithHeader("Authorization", "Bearer "+token)
}

// MultipartVideo собирает форму с файлом video и полем description. Возвращает тело и Content-Type.
func MultipartVideo(fileName, contentType string, video []byte, description string) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create video part: %s", err.Error())
	}
	if _, err = part.Write(video); err != nil {
		return nil, "", fmt.Errorf("write video part: %s", err.Error())
	}
	if err = w.WriteField("description", description); err != nil {
		return nil, "", fmt.Errorf("write description: %s", err.Error())
	}
	if err = w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %s", err.Error())
	}
	return buf, w.FormDataContentType(), nil
}
