package comment

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		text    string
		want    Comment
		wantErr bool
	}{
		{"plain", "Ana", "Hola", Comment{Name: "Ana", Comment: "Hola"}, false},
		{"trims", "  Ana \n", "\tHola  ", Comment{Name: "Ana", Comment: "Hola"}, false},
		{"keeps inner spaces", "Ana María", "muy  bien", Comment{Name: "Ana María", Comment: "muy  bien"}, false},
		{"blank name", " ", "text", Comment{}, true},
		{"blank comment", "name", "  ", Comment{}, true},
		{"both empty", "", "", Comment{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.author, tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyFields) {
					t.Fatalf("err = %v, want ErrEmptyFields", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c != tt.want {
				t.Errorf("got %+v, want %+v", c, tt.want)
			}
		})
	}
}

func TestCommentJSONFields(t *testing.T) {
	data, err := json.Marshal(Comment{Name: "Ana", Comment: "Hola"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"name":"Ana","comment":"Hola"}` {
		t.Errorf("json = %s", data)
	}
}
