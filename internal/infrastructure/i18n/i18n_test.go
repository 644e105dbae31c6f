package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	locales := map[string]string{
		"en.json": `{
  "error.duplicate_registry": "A {{.Resource}} with this {{.Field}} already exists",
  "email.reservation_confirmation.subject": "Reservation confirmed"
}`,
		"pt-BR.json": `{
  "error.duplicate_registry": "Já existe um registro de {{.Resource}} com este {{.Field}}",
  "email.reservation_confirmation.subject": "Reserva confirmada"
}`,
	}

	for name, content := range locales {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil { //nolint:gosec
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carrega todos os locales do diretório", func(t *testing.T) {
		service, err := NewService(writeLocales(t), "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if got := len(service.GetSupportedLanguages()); got != 2 {
			t.Errorf("esperava 2 idiomas suportados, obteve %d", got)
		}
		if !service.IsLanguageSupported("pt-BR") {
			t.Error("esperava suporte a pt-BR")
		}
		if service.IsLanguageSupported("fr") {
			t.Error("não esperava suporte a fr")
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		if _, err := NewService("/diretorio/inexistente", "en"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não tem locale", func(t *testing.T) {
		if _, err := NewService(writeLocales(t), "es"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService(writeLocales(t), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz chave simples", func(t *testing.T) {
		got := service.T("pt-BR", "email.reservation_confirmation.subject")
		if got != "Reserva confirmada" {
			t.Errorf("esperava 'Reserva confirmada', obteve '%s'", got)
		}
	})

	t.Run("interpola parâmetros no template", func(t *testing.T) {
		got := service.T("en", "error.duplicate_registry", map[string]interface{}{
			"Resource": "reservation",
			"Field":    "user and package date",
		})
		expected := "A reservation with this user and package date already exists"
		if got != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, got)
		}
	})

	t.Run("idioma desconhecido cai para o padrão", func(t *testing.T) {
		got := service.T("fr", "email.reservation_confirmation.subject")
		if got != "Reservation confirmed" {
			t.Errorf("esperava fallback em inglês, obteve '%s'", got)
		}
	})

	t.Run("chave inexistente retorna a própria chave", func(t *testing.T) {
		got := service.T("en", "chave.que.nao.existe")
		if got != "chave.que.nao.existe" {
			t.Errorf("esperava a chave de volta, obteve '%s'", got)
		}
	})
}

func TestService_ConcurrentAccess(t *testing.T) {
	service, err := NewService(writeLocales(t), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "error.duplicate_registry", map[string]interface{}{"Resource": "user", "Field": "email"})
		}()
		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("pt-BR")
		}()
	}
	wg.Wait()
}
