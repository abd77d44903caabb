// Copyright 2024 combiphar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proofupload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrFileTooLarge       = errors.New("凭证文件超过大小上限")
	ErrUnsupportedContent = errors.New("仅支持图片或PDF格式的凭证")
)

// MaxProofSize 凭证文件大小上限
const MaxProofSize = 5 << 20

// Store 保存买家上传的转账凭证
type Store interface {
	// Save 校验大小与类型后落盘, 返回可回读的相对路径
	Save(orderSN string, filename, contentType string, size int64, r io.Reader) (string, error)
}

type localStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) Store {
	return &localStore{baseDir: baseDir}
}

func (s *localStore) Save(orderSN string, filename, contentType string, size int64, r io.Reader) (string, error) {
	if size > MaxProofSize {
		return "", fmt.Errorf("%w: %d 字节", ErrFileTooLarge, size)
	}
	if !allowedContentType(contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedContent, contentType)
	}
	dir := filepath.Join(s.baseDir, orderSN)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建凭证目录失败: %w", err)
	}
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), shortuuid.New()[:8], filepath.Ext(filename))
	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("创建凭证文件失败: %w", err)
	}
	defer f.Close()
	// 上限兜底: 表单里声明的 size 不可信
	if _, err = io.Copy(f, io.LimitReader(r, MaxProofSize+1)); err != nil {
		return "", fmt.Errorf("写入凭证文件失败: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() > MaxProofSize {
		_ = os.Remove(dst)
		return "", ErrFileTooLarge
	}
	return filepath.Join(orderSN, name), nil
}

func allowedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") ||
		contentType == "application/pdf"
}
