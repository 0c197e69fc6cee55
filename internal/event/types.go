// internal/event/types.go
package event

const (
	StateChanged    EventType = "StateChanged"    // Движок сменил состояние (Data: engine.State)
	BlockLanded     EventType = "BlockLanded"     // Блок успешно приземлился (Data: новый счёт)
	TinyBlockLanded EventType = "TinyBlockLanded" // Осталась половина блока или меньше
	GameOver        EventType = "GameOver"        // Промах, игра окончена (Data: итоговый счёт)
)
