package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	registerUser(t, r, "alice@teamly.app")

	// duplicate email
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":              "alice again",
		"email":             "alice@teamly.app",
		"password":          "supersecret1",
		"security_question": "q",
		"security_answer":   "a",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: code %d", w.Code)
	}

	if token := loginUser(t, r, "alice@teamly.app"); token == "" {
		t.Fatalf("empty token")
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r, "alice@teamly.app")

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@teamly.app",
		"password": "wrongpassword",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "nobody@teamly.app",
		"password": "supersecret1",
	})

	for _, w := range []int{wrongPassword.Code, unknownEmail.Code} {
		if w != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w)
		}
	}

	// same message either way, so emails cannot be probed
	msg1 := decode(t, wrongPassword)["message"]
	msg2 := decode(t, unknownEmail)["message"]
	if msg1 != msg2 {
		t.Fatalf("login errors distinguish the failing field: %q vs %q", msg1, msg2)
	}
}

func TestPasswordRecovery(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r, "alice@teamly.app")

	w := doJSON(t, r, http.MethodPost, "/auth/recuperar", "", gin.H{"email": "alice@teamly.app"})
	if w.Code != http.StatusOK {
		t.Fatalf("recover: code %d", w.Code)
	}
	data := decode(t, w)["data"].(map[string]interface{})
	if data["security_question"] != "favorite team?" {
		t.Fatalf("unexpected question: %v", data["security_question"])
	}

	// wrong answer is rejected
	w = doJSON(t, r, http.MethodPost, "/auth/restablecer", "", gin.H{
		"email":           "alice@teamly.app",
		"security_answer": "nacional",
		"new_password":    "anothersecret1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong answer: code %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/auth/restablecer", "", gin.H{
		"email":           "alice@teamly.app",
		"security_answer": "millonarios",
		"new_password":    "anothersecret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reset: code %d body %s", w.Code, w.Body.String())
	}

	// old password no longer works, new one does
	old := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@teamly.app",
		"password": "supersecret1",
	})
	if old.Code != http.StatusUnauthorized {
		t.Fatalf("old password still accepted: code %d", old.Code)
	}
	fresh := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@teamly.app",
		"password": "anothersecret1",
	})
	if fresh.Code != http.StatusOK {
		t.Fatalf("new password rejected: code %d", fresh.Code)
	}
}
