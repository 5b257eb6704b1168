package syncqueue

import (
	"dispatch/internal/entities"
)

func ToDomain(i *SyncItemDB) *entities.SyncItem {
	if i == nil {
		return nil
	}

	return &entities.SyncItem{
		ID:        i.ID,
		Type:      entities.SyncOperationType(i.Type),
		Payload:   i.Payload,
		Retries:   i.Retries,
		CreatedAt: i.CreatedAt,
	}
}

func ToDomainList(itemsDB []SyncItemDB) []entities.SyncItem {
	if len(itemsDB) == 0 {
		return []entities.SyncItem{}
	}

	result := make([]entities.SyncItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = *ToDomain(&itemDB)
	}
	return result
}
