package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/tasks"
)

// AudioController enqueues background audio-enrichment tasks.
type AudioController struct {
	store      EntryStore
	taskClient *tasks.Client
}

func NewAudioController(store EntryStore, taskClient *tasks.Client) *AudioController {
	return &AudioController{
		store:      store,
		taskClient: taskClient,
	}
}

// EnrichEntry handles POST /dictionary/entries/:id/enrich-audio. The lookup
// itself runs in the background; the endpoint only verifies the entry and
// queues the task.
func (controller *AudioController) EnrichEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := controller.store.GetEntryByID(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "entry")
			return
		}
		respondStoreError(c, err, "get entry")
		return
	}

	ids, err := controller.taskClient.Add(tasks.EnrichEntryAudioTask{EntryID: id}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue audio task")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "audio enrichment queued",
		"taskId":  ids[0],
	})
}

// EnrichAll handles POST /dictionary/audio/enrich-all and queues one sweep
// over every entry missing audio.
func (controller *AudioController) EnrichAll(c *gin.Context) {
	ids, err := controller.taskClient.Add(tasks.EnrichAllAudioTask{}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue audio sweep")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "audio enrichment sweep queued",
		"taskId":  ids[0],
	})
}
