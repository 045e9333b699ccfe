package mongodb

import (
  "testing"

  "go.mongodb.org/mongo-driver/bson"
)

type testDocument struct {
  ChatId   int64  `bson:"chat_id"`
  Name     string `bson:"name"`
  Skipped  string `bson:"-"`
  Untagged string
}

func TestMakeDocument(t *testing.T) {
  if doc := makeDocument(nil); doc == nil {
    t.Fatal("Expected map document for nil struct type")
  }

  doc := makeDocument(testDocument{})

  if _, ok := doc.(*testDocument); !ok {
    t.Fatalf("Expected *testDocument, got %T", doc)
  }
}

func TestMakeBsonDUpdates(t *testing.T) {
  updates := makeBsonDUpdates(testDocument{
    ChatId:  100,
    Skipped: "dropped",
  })

  if len(updates) != 1 || updates[0].Key != "$set" {
    t.Fatalf("Expected single $set entry, got %+v", updates)
  }

  set, ok := updates[0].Value.(bson.D)
  if !ok {
    t.Fatalf("Expected bson.D under $set, got %T", updates[0].Value)
  }

  // Zero, untagged and "-" tagged fields are all omitted.
  if len(set) != 1 {
    t.Fatalf("Expected one update field, got %+v", set)
  }
  if set[0].Key != "chat_id" || set[0].Value != int64(100) {
    t.Errorf("Unexpected update entry: %+v", set[0])
  }
}

func TestMakeBsonDFilters(t *testing.T) {
  filters := makeBsonDFilters(map[string]any{"chat_id": int64(100)})

  if len(filters) != 1 {
    t.Fatalf("Expected one filter, got %+v", filters)
  }
  if filters[0].Key != "chat_id" || filters[0].Value != int64(100) {
    t.Errorf("Unexpected filter entry: %+v", filters[0])
  }
}
