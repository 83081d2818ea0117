package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRatingPromedioScenario(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r, "author@teamly.app")
	targetID := registerUser(t, r, "target@teamly.app")
	token := loginUser(t, r, "author@teamly.app")

	w := doJSON(t, r, http.MethodPost, "/puntuaciones/create-or-update", token, gin.H{
		"idUsuarioComentado": targetID,
		"puntuacion":         4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("first rating: code %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/puntuaciones/usuario/"+targetID+"/promedio", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("promedio: code %d", w.Code)
	}
	data := decode(t, w)["data"].(map[string]interface{})
	if data["promedio"].(float64) != 4.0 || data["total_puntuaciones"].(float64) != 1 {
		t.Fatalf("expected promedio 4.0 count 1, got %v", data)
	}

	// re-rating overwrites: count stays 1, average follows the latest score
	w = doJSON(t, r, http.MethodPost, "/puntuaciones/create-or-update", token, gin.H{
		"idUsuarioComentado": targetID,
		"puntuacion":         2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second rating should be an update: code %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/puntuaciones/usuario/"+targetID+"/promedio", "", nil)
	data = decode(t, w)["data"].(map[string]interface{})
	if data["promedio"].(float64) != 2.0 || data["total_puntuaciones"].(float64) != 1 {
		t.Fatalf("expected promedio 2.0 count 1, got %v", data)
	}
}

func TestPromedioUnratedUser(t *testing.T) {
	r, _ := newTestRouter(t)
	targetID := registerUser(t, r, "target@teamly.app")

	w := doJSON(t, r, http.MethodGet, "/puntuaciones/usuario/"+targetID+"/promedio", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("promedio: code %d", w.Code)
	}
	data := decode(t, w)["data"].(map[string]interface{})
	if data["promedio"] != nil {
		t.Fatalf("expected null promedio, got %v", data["promedio"])
	}
	if data["total_puntuaciones"].(float64) != 0 {
		t.Fatalf("expected count 0, got %v", data["total_puntuaciones"])
	}
}

func TestSelfRatingRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	selfID := registerUser(t, r, "solo@teamly.app")
	token := loginUser(t, r, "solo@teamly.app")

	w := doJSON(t, r, http.MethodPost, "/puntuaciones/create-or-update", token, gin.H{
		"idUsuarioComentado": selfID,
		"puntuacion":         5,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self rating: code %d", w.Code)
	}
}

func TestCommentVerifyDirectionality(t *testing.T) {
	r, _ := newTestRouter(t)
	aliceID := registerUser(t, r, "alice@teamly.app")
	bobID := registerUser(t, r, "bob@teamly.app")
	aliceToken := loginUser(t, r, "alice@teamly.app")

	w := doJSON(t, r, http.MethodPost, "/comentarios", aliceToken, gin.H{
		"idUsuarioComentado": bobID,
		"contenido":          "buen arquero",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create comment: code %d body %s", w.Code, w.Body.String())
	}

	verify := func(author, target string) map[string]interface{} {
		path := fmt.Sprintf("/comentarios/verificar?idUsuario=%s&idUsuarioComentado=%s", author, target)
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("verificar: code %d", w.Code)
		}
		return decode(t, w)["data"].(map[string]interface{})
	}

	if verify(aliceID, bobID)["existe"] != true {
		t.Fatalf("A->B comment not found by verificar")
	}
	// B->A is an independent pair and must stay absent
	if verify(bobID, aliceID)["existe"] != false {
		t.Fatalf("reverse pair reported as existing")
	}

	// second write from the same author overwrites instead of duplicating
	w = doJSON(t, r, http.MethodPost, "/comentarios", aliceToken, gin.H{
		"idUsuarioComentado": bobID,
		"contenido":          "mejor delantero",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("overwrite should answer 200, got %d", w.Code)
	}

	list := doJSON(t, r, http.MethodGet, "/comentarios/usuario/"+bobID, "", nil)
	body := decode(t, list)
	if body["count"].(float64) != 1 {
		t.Fatalf("expected a single comment row, got %v", body["count"])
	}
	items := body["data"].([]interface{})
	if items[0].(map[string]interface{})["contenido"] != "mejor delantero" {
		t.Fatalf("overwrite did not replace content")
	}
}

func TestCombinedFeedback(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r, "alice@teamly.app")
	bobID := registerUser(t, r, "bob@teamly.app")
	token := loginUser(t, r, "alice@teamly.app")

	w := doJSON(t, r, http.MethodPost, "/comentarios", token, gin.H{
		"idUsuarioComentado": bobID,
		"contenido":          "puntual y amable",
		"puntuacion":         5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("feedback: code %d body %s", w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].(map[string]interface{})
	if _, ok := data["puntuacion"]; !ok {
		t.Fatalf("response missing paired rating")
	}

	promedio := doJSON(t, r, http.MethodGet, "/puntuaciones/usuario/"+bobID+"/promedio", "", nil)
	pd := decode(t, promedio)["data"].(map[string]interface{})
	if pd["promedio"].(float64) != 5.0 || pd["total_puntuaciones"].(float64) != 1 {
		t.Fatalf("paired rating not written: %v", pd)
	}

	// deleting the comment drops the paired rating as well
	commentID := data["comentario"].(map[string]interface{})["id"].(string)
	del := doJSON(t, r, http.MethodDelete, "/comentarios/"+commentID, token, nil)
	if del.Code != http.StatusOK {
		t.Fatalf("delete: code %d", del.Code)
	}
	promedio = doJSON(t, r, http.MethodGet, "/puntuaciones/usuario/"+bobID+"/promedio", "", nil)
	pd = decode(t, promedio)["data"].(map[string]interface{})
	if pd["total_puntuaciones"].(float64) != 0 {
		t.Fatalf("paired rating survived comment delete: %v", pd)
	}
}
