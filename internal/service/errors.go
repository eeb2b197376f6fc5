package service

import (
	"errors"
	"net/http"
)

var (
	ErrDataFormat          = errors.New("데이터 형식이 올바르지 않습니다.")
	ErrPostTitleFormat     = errors.New("게시글 제목의 형식이 올바르지 않습니다.")
	ErrPostContentFormat   = errors.New("게시글 내용의 형식이 올바르지 않습니다.")
	ErrTitleFormat         = errors.New("제목의 형식이 올바르지 않습니다.")
	ErrContentFormat       = errors.New("내용의 형식이 올바르지 않습니다.")
	ErrPostUpdateForbidden = errors.New("게시글 수정권한이 없습니다.")
	ErrCommentContentEmpty = errors.New("댓글 내용을 입력해주세요")

	ErrPostNotFound           = errors.New("게시글이 존재하지 않습니다.")
	ErrPostDeleteNotFound     = errors.New("게시글이 존재하지 않습니다.")
	ErrPostDeleteForbidden    = errors.New("게시글 삭제 권한이 존재하지 않습니다.")
	ErrCommentPostNotFound    = errors.New("존재하지 않는 게시글입니다.")
	ErrCommentNotFound        = errors.New("존재하지 않는 댓글입니다.")
	ErrCommentUpdateForbidden = errors.New("댓글 수정 권한이 없습니다.")
	ErrCommentDeleteForbidden = errors.New("댓글 삭제 권한이 없습니다.")
	ErrLikePostNotFound       = errors.New("해당하는 게시글이 존재하지 않습니다.")

	ErrPostCreateFailed    = errors.New("게시글 작성에 실패하였습니다.")
	ErrPostListFailed      = errors.New("게시글 조회에 실패하였습니다.")
	ErrPostGetFailed       = errors.New("게시글 조회에 실패 하였습니다.")
	ErrPostUpdateFailed    = errors.New("게시글 수정에 실패하였습니다.")
	ErrPostDeleteFailed    = errors.New("게시글 삭제에 실패하였습니다.")
	ErrLikedPostListFailed = errors.New("좋아요 게시글 조회에 실패하였습니다.")
	ErrCommentCreateFailed = errors.New("댓글 작성에 실패하였습니다.")
	ErrCommentListFailed   = errors.New("댓글 목록 조회에 실패하였습니다.")
	ErrCommentUpdateFailed = errors.New("댓글 수정에 실패하였습니다.")
	ErrCommentDeleteFailed = errors.New("댓글 삭제에 실패하였습니다.")
	ErrLikeFailed          = errors.New("좋아요 등록에 실패하였습니다.")

	ErrLoginRequired = errors.New("로그인 후 이용 가능한 기능입니다.")
	ErrAuthInvalid   = errors.New("전달된 쿠키에서 오류가 발생하였습니다.")
	UnExpectedError  = errors.New("예상하지 못한 오류가 발생하였습니다.")
)

// errCommentLookup 读取评论失败，由调用方换成各自的失败错误
var errCommentLookup = errors.New("comment lookup failed")

var ErrorMap = map[error]int{
	ErrDataFormat:          http.StatusPreconditionFailed,
	ErrPostTitleFormat:     http.StatusPreconditionFailed,
	ErrPostContentFormat:   http.StatusPreconditionFailed,
	ErrTitleFormat:         http.StatusPreconditionFailed,
	ErrContentFormat:       http.StatusPreconditionFailed,
	ErrPostUpdateForbidden: http.StatusPreconditionFailed,
	ErrCommentContentEmpty: http.StatusPreconditionFailed,

	ErrPostNotFound:           http.StatusNotFound,
	ErrPostDeleteNotFound:     http.StatusForbidden,
	ErrPostDeleteForbidden:    http.StatusForbidden,
	ErrCommentPostNotFound:    http.StatusNotFound,
	ErrCommentNotFound:        http.StatusNotFound,
	ErrCommentUpdateForbidden: http.StatusForbidden,
	ErrCommentDeleteForbidden: http.StatusForbidden,
	ErrLikePostNotFound:       http.StatusNotFound,

	ErrPostCreateFailed:    http.StatusBadRequest,
	ErrPostListFailed:      http.StatusBadRequest,
	ErrPostGetFailed:       http.StatusBadRequest,
	ErrPostUpdateFailed:    http.StatusBadRequest,
	ErrPostDeleteFailed:    http.StatusBadRequest,
	ErrLikedPostListFailed: http.StatusBadRequest,
	ErrCommentCreateFailed: http.StatusBadRequest,
	ErrCommentListFailed:   http.StatusBadRequest,
	ErrCommentUpdateFailed: http.StatusBadRequest,
	ErrCommentDeleteFailed: http.StatusBadRequest,
	ErrLikeFailed:          http.StatusBadRequest,

	ErrLoginRequired: http.StatusUnauthorized,
	ErrAuthInvalid:   http.StatusUnauthorized,
	UnExpectedError:  http.StatusInternalServerError,
}
