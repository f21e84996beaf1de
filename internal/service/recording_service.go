package service

import (
	"errors"
	"fmt"
	"strings"

	"stream-preview/internal/domain/model"
	"stream-preview/internal/domain/vo"
	"stream-preview/internal/preview"
	"stream-preview/internal/repository"
	"stream-preview/pkg/util"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var ErrRecordingNotFound = errors.New("录制任务不存在")

type RecordingService struct {
	recordingRepo *repository.RecordingRepository
}

func NewRecordingService(recordingRepo *repository.RecordingRepository) *RecordingService {
	return &RecordingService{recordingRepo: recordingRepo}
}

func (r *RecordingService) AddRecording(addVO *vo.RecordingAddVO) (*model.Recording, error) {
	if addVO == nil {
		return nil, errors.New("参数为空")
	}
	id, err := util.NextID()
	if err != nil {
		return nil, fmt.Errorf("生成 ID 失败: %w", err)
	}

	recording := &model.Recording{
		ID:           id,
		StreamerName: strings.TrimSpace(addVO.StreamerName),
		Platform:     strings.TrimSpace(addVO.Platform),
		LiveTitle:    strings.TrimSpace(addVO.LiveTitle),
		Quality:      addVO.Quality,
		URL:          strings.TrimSpace(addVO.URL),
		PreviewURL:   strings.TrimSpace(addVO.PreviewURL),
	}
	if err := r.recordingRepo.AddRecording(recording); err != nil {
		return nil, fmt.Errorf("保存录制任务失败: %w", err)
	}
	log.Info().Int64("id", id).Str("streamer", recording.StreamerName).Msg("[recording] 添加录制任务")
	return recording, nil
}

// GetRecording 不存在时返回 ErrRecordingNotFound
func (r *RecordingService) GetRecording(id int64) (*model.Recording, error) {
	if id == 0 {
		return nil, errors.New("id 为空")
	}
	recording, err := r.recordingRepo.GetRecordingById(id)
	if err != nil {
		return nil, err
	}
	if recording == nil {
		return nil, ErrRecordingNotFound
	}
	return recording, nil
}

func (r *RecordingService) GetRecordingVO(id int64) (*vo.RecordingVO, error) {
	recording, err := r.GetRecording(id)
	if err != nil {
		return nil, err
	}
	recordingVO := toRecordingVO(recording)
	return &recordingVO, nil
}

func (r *RecordingService) ListRecordings() ([]vo.RecordingVO, error) {
	recordings, err := r.recordingRepo.ListRecordings()
	if err != nil {
		return nil, err
	}
	return lo.Map(recordings, func(recording model.Recording, _ int) vo.RecordingVO {
		return toRecordingVO(&recording)
	}), nil
}

// UpdateRecording 刷新标题、画质或地址，空字段不修改
func (r *RecordingService) UpdateRecording(id int64, updateVO *vo.RecordingUpdateVO) error {
	if updateVO == nil {
		return errors.New("参数为空")
	}
	err := r.recordingRepo.UpdateRecordingExceptZero(&model.Recording{
		ID:         id,
		LiveTitle:  strings.TrimSpace(updateVO.LiveTitle),
		Quality:    updateVO.Quality,
		URL:        strings.TrimSpace(updateVO.URL),
		PreviewURL: strings.TrimSpace(updateVO.PreviewURL),
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordingNotFound
	}
	if err != nil {
		return fmt.Errorf("更新录制任务失败: %w", err)
	}
	log.Info().Int64("id", id).Msg("[recording] 更新录制任务")
	return nil
}

func (r *RecordingService) RemoveRecording(id int64) error {
	err := r.recordingRepo.RemoveRecording(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordingNotFound
	}
	return err
}

// Descriptor 转换为预览使用的只读描述
func Descriptor(recording *model.Recording) preview.StreamDescriptor {
	return preview.StreamDescriptor{
		PreviewURL:   recording.PreviewURL,
		StreamerName: recording.StreamerName,
		Platform:     recording.Platform,
		LiveTitle:    recording.LiveTitle,
		Quality:      recording.Quality,
		RoomURL:      recording.URL,
	}
}

func toRecordingVO(recording *model.Recording) vo.RecordingVO {
	return vo.RecordingVO{
		ID:           recording.ID,
		StreamerName: recording.StreamerName,
		Platform:     recording.Platform,
		LiveTitle:    recording.LiveTitle,
		Quality:      recording.Quality,
		URL:          recording.URL,
		PreviewURL:   recording.PreviewURL,
		StreamType:   preview.Classify(recording.PreviewURL).String(),
		CreateTime:   util.MillisToTime(recording.CreateTime),
		UpdateTime:   util.MillisToTime(recording.UpdateTime),
	}
}
