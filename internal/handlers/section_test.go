package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmaeda/studycards-api/internal/models"
)

func createSection(t *testing.T, env *testEnv, userID, collectionID, name string) models.Section {
	t.Helper()

	w := env.request(t, "POST", "/api/sections/newSection", map[string]string{
		"userId":          userID,
		"name":            name,
		"backgroundColor": "#112233",
		"textColor":       "#ffffff",
		"collectionId":    collectionID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var section models.Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &section))
	return section
}

func TestSectionHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "Alice", "alice@example.com")
	collection := createCollection(t, env, user.ID, "Algorithms")

	section := createSection(t, env, user.ID, collection.ID, "Sorting")

	// Section sequence continues past the default "Main" section.
	require.Equal(t, fmt.Sprintf("%s.sec.2", collection.ID), section.ID)
	require.Equal(t, "Sorting", section.Name)

	stored := env.fetchUser(t, user.ID)
	require.Equal(t, 2, stored.TotalSections)

	var storedCollection models.Collection
	require.NoError(t, env.db.First(&storedCollection, "id = ?", collection.ID).Error)
	require.Equal(t, 2, storedCollection.TotalNoSections)
	require.Equal(t, []string{collection.SectionIDs[0], section.ID}, []string(storedCollection.SectionIDs))
}

func TestSectionHandler_Create_UnknownCollection(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "Alice", "alice@example.com")

	w := env.request(t, "POST", "/api/sections/newSection", map[string]string{
		"userId":          user.ID,
		"name":            "Orphaned",
		"backgroundColor": "#112233",
		"textColor":       "#ffffff",
		"collectionId":    "missing",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSectionHandler_ListByCollection(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "Alice", "alice@example.com")
	collection := createCollection(t, env, user.ID, "Algorithms")
	createSection(t, env, user.ID, collection.ID, "Sorting")

	w := env.request(t, "POST", "/api/sections/sections", map[string]string{
		"collectionId": collection.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sections []models.Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sections))
	require.Len(t, sections, 2) // "Main" plus "Sorting"
}

func TestSectionHandler_Edit(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "Alice", "alice@example.com")
	collection := createCollection(t, env, user.ID, "Algorithms")
	section := createSection(t, env, user.ID, collection.ID, "Sorting")

	for _, color := range []string{"#ABC", "#AABBCC"} {
		w := env.request(t, "PUT", "/api/sections/editSection", map[string]string{
			"sectionId":       section.ID,
			"name":            "Sorting II",
			"backgroundColor": color,
			"textColor":       "#000000",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var edited models.Section
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &edited))
		require.Equal(t, "Sorting II", edited.Name)
		require.Equal(t, color, edited.BackgroundColor)
	}
}

func TestSectionHandler_Edit_InvalidHexColor(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "Alice", "alice@example.com")
	collection := createCollection(t, env, user.ID, "Algorithms")
	section := createSection(t, env, user.ID, collection.ID, "Sorting")

	w := env.request(t, "PUT", "/api/sections/editSection", map[string]string{
		"sectionId":       section.ID,
		"name":            "Sorting",
		"backgroundColor": "red",
		"textColor":       "#000000",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSectionHandler_Edit_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "PUT", "/api/sections/editSection", map[string]string{
		"sectionId":       "missing",
		"name":            "Anything",
		"backgroundColor": "#ABC",
		"textColor":       "#000",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSectionHandler_Delete_Cascades(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "Alice", "alice@example.com")
	collection := createCollection(t, env, user.ID, "Algorithms")
	section := createSection(t, env, user.ID, collection.ID, "Sorting")

	w := env.request(t, "POST", "/api/flashcards/newFlashcard", map[string]any{
		"sectionId": section.ID,
		"userId":    user.ID,
		"flashcards": []map[string]string{
			{"question": "What is quicksort?"},
			{"question": "What is mergesort?"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, "DELETE", "/api/sections/deleteSection", map[string]string{
		"sectionId": section.ID,
		"userId":    user.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, "POST", "/api/sections/section", map[string]string{
		"sectionId": section.ID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Flashcard{}).Where("section_id = ?", section.ID).Count(&count).Error)
	require.Zero(t, count)

	stored := env.fetchUser(t, user.ID)
	require.Equal(t, 1, stored.TotalSections) // "Main" remains
	require.Zero(t, stored.TotalFlashcards)

	var storedCollection models.Collection
	require.NoError(t, env.db.First(&storedCollection, "id = ?", collection.ID).Error)
	require.Equal(t, 1, storedCollection.TotalNoSections)
	require.NotContains(t, []string(storedCollection.SectionIDs), section.ID)
}

func TestSectionHandler_Delete_Forbidden(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "Alice", "alice@example.com")
	intruder := env.registerUser(t, "Mallory", "mallory@example.com")
	collection := createCollection(t, env, owner.ID, "Algorithms")
	section := createSection(t, env, owner.ID, collection.ID, "Sorting")

	w := env.request(t, "DELETE", "/api/sections/deleteSection", map[string]string{
		"sectionId": section.ID,
		"userId":    intruder.ID,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}
