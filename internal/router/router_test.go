package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petweb/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{
		UploadDir: t.TempDir(),
		JWTSecret: "test-secret",
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_CatLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Crear gato sin foto (JSON)
	st, body := doReq(t, ts.URL, "POST", "/createCat", map[string]any{
		"name":   "Tom",
		"gender": "Male",
		"age":    3,
		"breed":  "Tabby",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create cat, got %d body=%s", st, string(body))
	}
	catID := extractID(t, body)

	// 2) El listado tiene exactamente un registro, sin campo image
	{
		st, body := doReq(t, ts.URL, "GET", "/", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list cats, got %d", st)
		}
		var list []map[string]any
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("list response is not an array: %s", string(body))
		}
		if len(list) != 1 {
			t.Fatalf("expected exactly 1 cat, got %d", len(list))
		}
		if _, hasImage := list[0]["image"]; hasImage {
			t.Fatalf("expected image absent for cat created without file: %v", list[0])
		}
		if list[0]["name"] != "Tom" || list[0]["breed"] != "Tabby" {
			t.Fatalf("listed cat does not match input: %v", list[0])
		}
	}

	// 3) Get por id devuelve el registro
	{
		st, body := doReq(t, ts.URL, "GET", "/getCat/"+catID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get cat, got %d", st)
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["id"] != catID {
			t.Fatalf("expected cat %s, got %v", catID, got)
		}
	}

	// 4) Update reemplaza campos
	{
		st, body := doReq(t, ts.URL, "PUT", "/updateCat/"+catID, map[string]any{
			"name":   "Tommy",
			"gender": "Male",
			"age":    4,
			"breed":  "Tabby",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update cat, got %d body=%s", st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["name"] != "Tommy" {
			t.Fatalf("expected updated name, got %v", got)
		}
	}

	// 5) Delete devuelve el registro borrado; get posterior da null
	{
		st, body := doReq(t, ts.URL, "DELETE", "/deleteCat/"+catID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete cat, got %d", st)
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["id"] != catID {
			t.Fatalf("expected deleted record in response, got %s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/getCat/"+catID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for absent cat, got %d", st)
		}
		if !isNull(body) {
			t.Fatalf("expected null body for absent cat, got %s", string(body))
		}
	}
}

func TestHTTP_CatUpload_And_UpdateClearsImage(t *testing.T) {
	ts := newTestServer(t)

	// Crear con foto (multipart)
	st, body := doMultipart(t, ts.URL, "POST", "/createCat", map[string]string{
		"name":   "Tom",
		"gender": "Male",
		"age":    "3",
		"breed":  "Tabby",
	}, "tom.png", []byte("png-bytes"))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create cat with file, got %d body=%s", st, string(body))
	}

	var created struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	}
	_ = json.Unmarshal(body, &created)
	if created.Image == "" || !strings.HasSuffix(created.Image, "-tom.png") {
		t.Fatalf("expected generated image name with original suffix, got %q", created.Image)
	}

	// El archivo subido se sirve estático bajo /uploads/
	{
		res, err := http.Get(ts.URL + "/uploads/" + created.Image)
		if err != nil {
			t.Fatalf("fetching upload: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 fetching upload, got %d", res.StatusCode)
		}
		raw, _ := io.ReadAll(res.Body)
		if string(raw) != "png-bytes" {
			t.Fatalf("uploaded bytes do not round-trip, got %q", string(raw))
		}
	}

	// Update sin archivo pisa la imagen
	st, body = doReq(t, ts.URL, "PUT", "/updateCat/"+created.ID, map[string]any{
		"name":   "Tom",
		"gender": "Male",
		"age":    3,
		"breed":  "Tabby",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}
	var updated map[string]any
	_ = json.Unmarshal(body, &updated)
	if _, hasImage := updated["image"]; hasImage {
		t.Fatalf("expected image cleared after update without file: %v", updated)
	}
}

func TestHTTP_CreateCat_RequiresAge(t *testing.T) {
	ts := newTestServer(t)

	// age ausente => rechazo (campo requerido)
	st, body := doReq(t, ts.URL, "POST", "/createCat", map[string]any{
		"name":   "Tom",
		"gender": "Male",
		"breed":  "Tabby",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for omitted age, got %d body=%s", st, string(body))
	}

	// age 0 explícito vale
	st, body = doReq(t, ts.URL, "POST", "/createCat", map[string]any{
		"name":   "Tom",
		"gender": "Male",
		"age":    0,
		"breed":  "Tabby",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 for explicit age 0, got %d body=%s", st, string(body))
	}

	// idem en multipart: campo age vacío => rechazo
	st, body = doMultipart(t, ts.URL, "POST", "/createCat", map[string]string{
		"name":   "Tom",
		"gender": "Male",
		"age":    "",
		"breed":  "Tabby",
	}, "tom.png", []byte("png-bytes"))
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty form age, got %d body=%s", st, string(body))
	}
}

func TestHTTP_UpdateCat_RequiresAge(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/createCat", map[string]any{
		"name":   "Tom",
		"gender": "Male",
		"age":    3,
		"breed":  "Tabby",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create cat, got %d", st)
	}
	catID := extractID(t, body)

	st, body = doReq(t, ts.URL, "PUT", "/updateCat/"+catID, map[string]any{
		"name":   "Tom",
		"gender": "Male",
		"breed":  "Tabby",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for update without age, got %d body=%s", st, string(body))
	}
}

func TestHTTP_RegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Registro
	st, body := doReq(t, ts.URL, "POST", "/register", map[string]any{
		"username": "alice",
		"password": "s3cret-pw",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 register, got %d body=%s", st, string(body))
	}
	var reg struct {
		Success bool `json:"success"`
	}
	_ = json.Unmarshal(body, &reg)
	if !reg.Success {
		t.Fatalf("expected success=true on register, got %s", string(body))
	}

	// Username duplicado => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/register", map[string]any{
			"username": "alice",
			"password": "other-pw",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate username, got %d", st)
		}
	}

	// Login correcto
	{
		st, body := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"username": "alice",
			"password": "s3cret-pw",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d", st)
		}
		var res struct {
			Success    bool   `json:"success"`
			Token      string `json:"token"`
			UserStatus int    `json:"userStatus"`
		}
		_ = json.Unmarshal(body, &res)
		if !res.Success || res.Token == "" || res.UserStatus != 1 {
			t.Fatalf("unexpected login response: %s", string(body))
		}

		// token y userStatus salen siempre como claves, sin omitempty
		var raw map[string]any
		_ = json.Unmarshal(body, &raw)
		if _, ok := raw["userStatus"]; !ok {
			t.Fatalf("expected userStatus key in login response: %s", string(body))
		}
		if _, ok := raw["token"]; !ok {
			t.Fatalf("expected token key in login response: %s", string(body))
		}
	}

	// Contraseña incorrecta: negativo esperado, nunca status de error
	{
		st, body := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"username": "alice",
			"password": "wrong-pw",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 for wrong password, got %d", st)
		}
		var res struct {
			Success bool `json:"success"`
		}
		_ = json.Unmarshal(body, &res)
		if res.Success {
			t.Fatalf("expected success=false for wrong password")
		}
	}
}

func TestHTTP_MessageFlow(t *testing.T) {
	ts := newTestServer(t)

	// Enviar
	st, body := doReq(t, ts.URL, "POST", "/sendMessage", map[string]any{
		"sender":  "alice",
		"message": "quiero adoptar a Tom",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 send message, got %d body=%s", st, string(body))
	}
	msgID := extractID(t, body)

	// Recién enviado: response vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/getMessages/"+msgID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get message, got %d", st)
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["response"] != "" {
			t.Fatalf("expected empty response on fresh message: %v", got)
		}
	}

	// Responder fija recipient y response
	{
		st, body := doReq(t, ts.URL, "PUT", "/respondToMessage/"+msgID, map[string]any{
			"recipient": "alice",
			"response":  "Tom sigue disponible",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 respond, got %d body=%s", st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["recipient"] != "alice" || got["response"] != "Tom sigue disponible" {
			t.Fatalf("respond did not set fields: %v", got)
		}
		if got["sender"] != "alice" || got["message"] != "quiero adoptar a Tom" {
			t.Fatalf("respond must leave sender/message untouched: %v", got)
		}
	}

	// Listado completo
	{
		st, body := doReq(t, ts.URL, "GET", "/getAllMessages", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list messages, got %d", st)
		}
		var list []map[string]any
		if err := json.Unmarshal(body, &list); err != nil || len(list) != 1 {
			t.Fatalf("expected 1 message in list, got %s", string(body))
		}
	}

	// Borrar y verificar ausencia
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/deleteMessage/"+msgID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete message, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/getMessages/"+msgID, nil)
		if st != http.StatusOK || !isNull(body) {
			t.Fatalf("expected 200 null after delete, got %d %s", st, string(body))
		}
	}
}

func TestHTTP_SendMessage_MissingSender_IsRejected(t *testing.T) {
	ts := newTestServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/sendMessage", map[string]any{
		"message": "anon",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing sender, got %d", st)
	}
}

func extractID(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func isNull(body []byte) bool {
	return strings.TrimSpace(string(body)) == "null"
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doMultipart(t *testing.T, baseURL, method, path string, fields map[string]string, filename string, fileBytes []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(fileBytes); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
